// Package wizard implements the three-screen controller behind every front-end:
// choose a level count, edit one class per level, then view the generated
// program and its simulated output.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/andreagrandi/inheritance-sim/internal/chain"
)

const (
	// MinLevels is the smallest accepted level count.
	MinLevels = 2
	// MaxLevels is the largest accepted level count.
	MaxLevels = 1000
	// DefaultLevelInput is the level count shown when the wizard starts.
	DefaultLevelInput = "3"
)

var (
	ErrInvalidLevelCount = errors.New("enter at least 2 levels")
	ErrTooManyLevels     = fmt.Errorf("enter at most %d levels", MaxLevels)
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrIndexOutOfRange   = errors.New("class index out of range")
	ErrUnknownField      = errors.New("unknown class field")
)

// Screen identifies the active wizard screen.
type Screen int

const (
	ScreenLevelCount Screen = iota
	ScreenClassEditor
	ScreenResult
)

func (s Screen) String() string {
	switch s {
	case ScreenLevelCount:
		return "level-count"
	case ScreenClassEditor:
		return "class-editor"
	case ScreenResult:
		return "result"
	}

	return "screen(" + strconv.Itoa(int(s)) + ")"
}

// Field names one editable attribute of a class definition.
type Field string

const (
	FieldName   Field = "name"
	FieldMethod Field = "method"
	FieldBody   Field = "body"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldName, FieldMethod, FieldBody}

// ParseField converts a user-supplied field name.
func ParseField(raw string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(raw))) {
	case FieldName:
		return FieldName, nil
	case FieldMethod:
		return FieldMethod, nil
	case FieldBody:
		return FieldBody, nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownField, raw)
}

// State is a snapshot of everything the wizard holds.
type State struct {
	Screen     Screen
	LevelInput string
	Classes    []chain.ClassDefinition
	Source     string
	Output     string
}

// Wizard owns the state and enforces the allowed transitions:
//
//	LevelCount  --Next-->    ClassEditor
//	ClassEditor --Back-->    LevelCount
//	ClassEditor --Execute--> Result
//	Result      --Back-->    ClassEditor
type Wizard struct {
	state  State
	logger *zap.Logger
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithLogger sets the logger used for transition events.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a wizard on the level count screen.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		state: State{
			Screen:     ScreenLevelCount,
			LevelInput: DefaultLevelInput,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *Wizard) Screen() Screen { return w.state.Screen }

func (w *Wizard) LevelInput() string { return w.state.LevelInput }

func (w *Wizard) Source() string { return w.state.Source }

func (w *Wizard) Output() string { return w.state.Output }

// Classes returns a copy of the current class list.
func (w *Wizard) Classes() []chain.ClassDefinition {
	return copyClasses(w.state.Classes)
}

// State returns a deep copy of the wizard state.
func (w *Wizard) State() State {
	s := w.state
	s.Classes = copyClasses(w.state.Classes)
	return s
}

// SetLevelInput stores the raw level count. It is only parsed by Next.
func (w *Wizard) SetLevelInput(raw string) {
	w.state.LevelInput = raw
}

// Next validates the level count and opens the class editor with a fresh
// list of default classes. On ErrInvalidLevelCount or ErrTooManyLevels
// nothing changes.
func (w *Wizard) Next() error {
	if w.state.Screen != ScreenLevelCount {
		return w.rejectTransition("next")
	}

	levels := ParseLevelCount(w.state.LevelInput)
	if levels < MinLevels {
		w.logger.Debug("level count rejected",
			zap.String("input", w.state.LevelInput),
			zap.Int("parsed", levels),
		)
		return ErrInvalidLevelCount
	}

	if levels > MaxLevels {
		w.logger.Debug("level count rejected",
			zap.String("input", w.state.LevelInput),
			zap.Int("parsed", levels),
		)
		return ErrTooManyLevels
	}

	w.state.Classes = chain.Defaults(levels)
	w.moveTo(ScreenClassEditor, zap.Int("levels", levels))

	return nil
}

// LoadClasses opens the class editor with a copy of defs instead of the
// defaults. The level input is updated to match.
func (w *Wizard) LoadClasses(defs []chain.ClassDefinition) error {
	if w.state.Screen != ScreenLevelCount {
		return w.rejectTransition("load")
	}

	if len(defs) < MinLevels {
		return ErrInvalidLevelCount
	}

	if len(defs) > MaxLevels {
		return ErrTooManyLevels
	}

	w.state.LevelInput = strconv.Itoa(len(defs))
	w.state.Classes = copyClasses(defs)
	w.moveTo(ScreenClassEditor, zap.Int("levels", len(defs)), zap.Bool("preset", true))

	return nil
}

// Edit replaces one field of one class. Any value is accepted.
func (w *Wizard) Edit(index int, field Field, value string) error {
	if w.state.Screen != ScreenClassEditor {
		return w.rejectTransition("edit")
	}

	if index < 0 || index >= len(w.state.Classes) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(w.state.Classes))
	}

	def := &w.state.Classes[index]
	switch field {
	case FieldName:
		def.Name = value
	case FieldMethod:
		def.Method = value
	case FieldBody:
		def.Body = value
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, field)
	}

	return nil
}

// Execute generates the program and simulated output and shows the result.
func (w *Wizard) Execute() error {
	if w.state.Screen != ScreenClassEditor {
		return w.rejectTransition("execute")
	}

	program := chain.Generate(w.state.Classes)
	w.state.Source = program.Source
	w.state.Output = program.Output
	w.moveTo(ScreenResult, zap.Int("levels", len(w.state.Classes)))

	return nil
}

// Back returns to the previous screen. No data is cleared.
func (w *Wizard) Back() error {
	switch w.state.Screen {
	case ScreenClassEditor:
		w.moveTo(ScreenLevelCount)
	case ScreenResult:
		w.moveTo(ScreenClassEditor)
	default:
		return w.rejectTransition("back")
	}

	return nil
}

func (w *Wizard) moveTo(screen Screen, fields ...zap.Field) {
	from := w.state.Screen
	w.state.Screen = screen

	fields = append([]zap.Field{
		zap.Stringer("from", from),
		zap.Stringer("to", screen),
	}, fields...)
	w.logger.Debug("wizard transition", fields...)
}

func (w *Wizard) rejectTransition(op string) error {
	w.logger.Debug("wizard transition rejected",
		zap.String("op", op),
		zap.Stringer("screen", w.state.Screen),
	)

	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, w.state.Screen)
}

// ParseLevelCount reads the leading integer of raw the way a number field
// does: leading whitespace and an optional sign are allowed, parsing stops at
// the first non-digit, and anything unreadable counts as 0.
func ParseLevelCount(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		return 0
	}

	return n
}

func copyClasses(defs []chain.ClassDefinition) []chain.ClassDefinition {
	if defs == nil {
		return nil
	}

	out := make([]chain.ClassDefinition, len(defs))
	copy(out, defs)

	return out
}
