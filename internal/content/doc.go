// Package content holds the portfolio data and renders it to markdown.
//
// The default portfolio is embedded from default.yaml. A custom file with the
// same shape can be passed with --content; Parse rejects unknown keys and
// Validate rejects unknown categories and skill levels outside 0-100.
//
// Sections renders the page as eight markdown sections in navigation order
// (home, about, education, experience, certifications, skills, projects,
// contact). Terminal styling is left to the caller.
package content
