// Package config loads connector scenes from YAML files.
//
// A scene names the two boxes, the routing mode and the presentation
// settings:
//
//	title: parser to lexer
//	mode: SHORTEST
//	dent: 20
//	origin:
//	  label: parser
//	  box: {x: 0, y: 0, width: 100, height: 40}
//	destination:
//	  label: lexer
//	  box: {x: 200, y: 120, width: 100, height: 40}
//	style:
//	  stroke: blue
//	  corner_radius: 4
//
// Setting legacy to side-to-side or top-to-bottom routes with the two-value
// auto mode instead of mode.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"elbow/canvas"
	"elbow/connections"
	"elbow/core"
	"elbow/export"
	"elbow/logging"
)

// CurrentVersion is the scene file format version written by Save.
const CurrentVersion = 1

// ErrNoLegacyRoute is returned by Build when a legacy scene's boxes overlap
// on both axes.
var ErrNoLegacyRoute = errors.New("boxes overlap on both axes, no legacy route")

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})
	_ = validate.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
		_, err := core.ParseMode(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		return export.IsColor(fl.Field().String())
	})
	_ = validate.RegisterValidation("boxstyle", func(fl validator.FieldLevel) bool {
		_, ok := canvas.BoxStyleByName(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation("preference", func(fl validator.FieldLevel) bool {
		_, err := connections.ParsePreference(fl.Field().String())
		return err == nil
	})
}

// Box is a rectangle given by its top-left corner and size.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width" validate:"gte=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

// Core converts the box to layout edges.
func (b Box) Core() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Node is one of the connected boxes.
type Node struct {
	Label string `yaml:"label,omitempty" validate:"max=64"`
	Color string `yaml:"color,omitempty" validate:"omitempty,color"`
	Box   Box    `yaml:"box"`
}

// Style holds the connector's presentation.
type Style struct {
	Stroke       string  `yaml:"stroke,omitempty" validate:"omitempty,color"`
	StrokeWidth  float64 `yaml:"stroke_width" validate:"gte=0,lte=64"`
	Dashed       bool    `yaml:"dashed,omitempty"`
	Arrow        bool    `yaml:"arrow"`
	BoxStyle     string  `yaml:"box_style,omitempty" validate:"omitempty,boxstyle"`
	CornerRadius float64 `yaml:"corner_radius,omitempty" validate:"gte=0"`
	Shadow       string  `yaml:"shadow,omitempty" validate:"omitempty,color"`
}

// Scene is the content of a scene file.
type Scene struct {
	Version     int             `yaml:"config_version" validate:"omitempty,eq=1"`
	Title       string          `yaml:"title,omitempty" validate:"max=120"`
	Mode        string          `yaml:"mode" validate:"omitempty,mode"`
	Legacy      string          `yaml:"legacy,omitempty" validate:"omitempty,preference"`
	Dent        float64         `yaml:"dent" validate:"gte=0,lte=1000"`
	Origin      Node            `yaml:"origin"`
	Destination Node            `yaml:"destination"`
	Style       Style           `yaml:"style"`
	Logging     logging.Options `yaml:"logging,omitempty"`
}

// Defaults returns an empty scene with the default mode, dent and style.
func Defaults() Scene {
	st := export.DefaultStyle()
	return Scene{
		Version: CurrentVersion,
		Mode:    core.TopToBottom.String(),
		Dent:    connections.DefaultDentSize,
		Style: Style{
			Stroke:      st.Stroke,
			StrokeWidth: st.StrokeWidth,
			Arrow:       st.Arrow,
			BoxStyle:    st.BoxStyle,
		},
	}
}

// Load reads and validates a scene file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene over the defaults and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (Scene, error) {
	s := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Save writes the scene as YAML.
func Save(path string, s Scene) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// Validate checks field ranges and names.
func (s Scene) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// RoutingMode returns the parsed mode, TOP_TO_BOTTOM when unset.
func (s Scene) RoutingMode() core.Mode {
	if s.Mode == "" {
		return core.TopToBottom
	}
	m, err := core.ParseMode(s.Mode)
	if err != nil {
		return core.TopToBottom
	}
	return m
}

// Router returns a router configured with the scene's dent and stroke.
func (s Scene) Router(logger *slog.Logger) *connections.Router {
	opts := []connections.Option{
		connections.WithDentSize(s.Dent),
		connections.WithStrokeWidth(s.Style.StrokeWidth),
	}
	if logger != nil {
		opts = append(opts, connections.WithLogger(logger))
	}
	return connections.NewRouter(opts...)
}

// Build routes the scene and returns it ready for export.
func (s Scene) Build(logger *slog.Logger) (*export.Scene, error) {
	router := s.Router(logger)
	origin, destination := s.Origin.Box.Core(), s.Destination.Box.Core()

	var res connections.Result
	if s.Legacy != "" {
		pref, err := connections.ParsePreference(s.Legacy)
		if err != nil {
			return nil, err
		}
		var ok bool
		if res, ok = router.RouteLegacy(origin, destination, pref); !ok {
			return nil, ErrNoLegacyRoute
		}
	} else {
		res = router.Route(origin, destination, s.RoutingMode())
	}

	return &export.Scene{
		Title:       s.Title,
		Origin:      export.Node{Box: origin, Label: s.Origin.Label, Color: s.Origin.Color},
		Destination: export.Node{Box: destination, Label: s.Destination.Label, Color: s.Destination.Color},
		Result:      res,
		Style: export.Style{
			Stroke:       s.Style.Stroke,
			StrokeWidth:  s.Style.StrokeWidth,
			Dashed:       s.Style.Dashed,
			Arrow:        s.Style.Arrow,
			BoxStyle:     s.Style.BoxStyle,
			CornerRadius: s.Style.CornerRadius,
			Shadow:       s.Style.Shadow,
		},
	}, nil
}

// formatValidationError reports the first failed rule by its YAML path.
func formatValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	e := errs[0]
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	param := e.Param()
	switch e.Tag() {
	case "gte":
		return fmt.Errorf("%s: must be at least %s", field, param)
	case "lte", "max":
		return fmt.Errorf("%s: must not exceed %s", field, param)
	case "eq":
		return fmt.Errorf("%s: unsupported value %v, want %s", field, e.Value(), param)
	case "oneof":
		return fmt.Errorf("%s: must be one of %s", field, param)
	case "mode":
		return fmt.Errorf("%s: %w: %v", field, core.ErrUnknownMode, e.Value())
	case "color", "boxstyle", "preference":
		return fmt.Errorf("%s: unknown %s %q", field, e.Tag(), e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
