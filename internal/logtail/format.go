package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one decoded zap JSON line.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Caller  string
	Message string
	Fields  []Field
}

// Field is an extra key/value pair, rendered as key=value.
type Field struct {
	Key   string
	Value string
}

var reservedKeys = map[string]bool{
	"ts": true, "level": true, "logger": true, "caller": true, "msg": true, "stacktrace": true,
}

// ParseLine decodes a zap JSON line. It reports false for anything that is
// not a JSON object with a "msg" key.
func ParseLine(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Entry{}, false
	}
	msg, ok := raw["msg"].(string)
	if !ok {
		return Entry{}, false
	}

	e := Entry{
		Time:    stringify(raw["ts"]),
		Level:   strings.ToUpper(stringify(raw["level"])),
		Logger:  stringify(raw["logger"]),
		Caller:  stringify(raw["caller"]),
		Message: msg,
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if !reservedKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Fields = append(e.Fields, Field{Key: k, Value: stringify(raw[k])})
	}
	return e, true
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// Formatter renders log lines for a terminal.
type Formatter struct {
	time   lipgloss.Style
	levels map[string]lipgloss.Style
	logger lipgloss.Style
	key    lipgloss.Style
	plain  lipgloss.Style
}

// NewFormatter styles output for r. A nil renderer uses lipgloss's default.
func NewFormatter(r *lipgloss.Renderer) *Formatter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	bold := r.NewStyle().Bold(true)
	return &Formatter{
		time:   r.NewStyle().Foreground(lipgloss.Color("#808080")),
		logger: r.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
		key:    r.NewStyle().Foreground(lipgloss.Color("#D7AFFF")),
		plain:  r.NewStyle(),
		levels: map[string]lipgloss.Style{
			"DEBUG": bold.Foreground(lipgloss.Color("#87CEEB")),
			"INFO":  bold.Foreground(lipgloss.Color("#5FD75F")),
			"WARN":  bold.Foreground(lipgloss.Color("#FFD700")),
			"ERROR": bold.Foreground(lipgloss.Color("#FF6B6B")),
		},
	}
}

// FormatLine renders a zap JSON line as
//
//	TIME LEVEL [logger] message key=value ...
//
// Lines that are not zap JSON are returned unchanged.
func (f *Formatter) FormatLine(line string) string {
	e, ok := ParseLine(line)
	if !ok {
		return line
	}

	var b strings.Builder
	if e.Time != "" {
		b.WriteString(f.time.Render(e.Time))
		b.WriteByte(' ')
	}
	level := e.Level
	if level == "" {
		level = "INFO"
	}
	style, ok := f.levels[level]
	if !ok {
		style = f.plain
	}
	b.WriteString(style.Render(fmt.Sprintf("%-5s", level)))
	b.WriteByte(' ')
	if e.Logger != "" {
		b.WriteString(f.logger.Render("[" + e.Logger + "]"))
		b.WriteByte(' ')
	}
	b.WriteString(e.Message)
	for _, field := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(f.key.Render(field.Key + "="))
		b.WriteString(quoteIfNeeded(field.Value))
	}
	return b.String()
}

// FormatLines formats every line.
func (f *Formatter) FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = f.FormatLine(line)
	}
	return out
}

func quoteIfNeeded(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\"=") {
		return fmt.Sprintf("%q", v)
	}
	return v
}
