package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-elastic/elasticlist/pkg/elastic"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "elastic.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadOptional returned nil config")
	}
	if cfg.Gesture.Damping != 0 {
		t.Fatalf("zero config Damping = %v, want 0", cfg.Gesture.Damping)
	}
}

func TestLoadOptionalParses(t *testing.T) {
	dir := writeConfig(t, `
gesture:
  damping: 0.4
  springback_ms: 600
header:
  enabled: true
  alignment: center
footer:
  enabled: true
  action: click
`)
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Gesture.Damping != 0.4 {
		t.Fatalf("Damping = %v, want 0.4", cfg.Gesture.Damping)
	}
	if cfg.Gesture.SpringbackMS != 600 {
		t.Fatalf("SpringbackMS = %v, want 600", cfg.Gesture.SpringbackMS)
	}
	if cfg.Header.Enabled == nil || !*cfg.Header.Enabled {
		t.Fatal("Header.Enabled not parsed")
	}
	if cfg.Footer.Action != "click" {
		t.Fatalf("Footer.Action = %q, want click", cfg.Footer.Action)
	}
}

func TestLoadOptionalBadYAML(t *testing.T) {
	dir := writeConfig(t, "gesture: [not a mapping")
	if _, err := LoadOptional(dir); err == nil {
		t.Fatal("LoadOptional succeeded on malformed yaml, want error")
	}
}

func TestOptions(t *testing.T) {
	cfg := &Config{}
	cfg.Gesture.Damping = 0.4
	cfg.Gesture.SpringbackMS = 600

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Damping != 0.4 {
		t.Fatalf("Damping = %v, want 0.4", opts.Damping)
	}
	if opts.SpringbackDuration != 600*time.Millisecond {
		t.Fatalf("SpringbackDuration = %v, want 600ms", opts.SpringbackDuration)
	}
}

func TestOptionsCurve(t *testing.T) {
	cfg := &Config{}
	cfg.Gesture.Curve = "ease-in-out"
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	// EaseInOutCurve(0.25) = 0.125; decelerate would give 0.4375 and
	// linear 0.25.
	if got := opts.SpringbackCurve(0.25); got != 0.125 {
		t.Fatalf("SpringbackCurve(0.25) = %v, want 0.125", got)
	}

	cfg.Gesture.Curve = "linear"
	opts, err = cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if got := opts.SpringbackCurve(0.25); got != 0.25 {
		t.Fatalf("SpringbackCurve(0.25) = %v, want 0.25", got)
	}

	// Unset selects the decelerate default.
	cfg.Gesture.Curve = ""
	opts, err = cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if got := opts.SpringbackCurve(0.25); got != 0.4375 {
		t.Fatalf("SpringbackCurve(0.25) = %v, want 0.4375", got)
	}

	cfg.Gesture.Curve = "bouncy"
	if _, err := cfg.Options(); err == nil {
		t.Fatal("Options accepted an unknown curve, want error")
	}
}

func TestOptionsRejectsBadDamping(t *testing.T) {
	cfg := &Config{}
	cfg.Gesture.Damping = 1.5
	if _, err := cfg.Options(); err == nil {
		t.Fatal("Options accepted damping > 1, want error")
	}
	cfg.Gesture.Damping = -0.1
	if _, err := cfg.Options(); err == nil {
		t.Fatal("Options accepted negative damping, want error")
	}
}

func TestParseAlignment(t *testing.T) {
	align, err := parseAlignment("  Bottom ")
	if err != nil {
		t.Fatalf("parseAlignment: %v", err)
	}
	if align != elastic.AlignBottom {
		t.Fatalf("parseAlignment = %v, want %v", align, elastic.AlignBottom)
	}
	if _, err := parseAlignment("sideways"); err == nil {
		t.Fatal("parseAlignment accepted an unknown value, want error")
	}
}

func TestParseAction(t *testing.T) {
	action, err := parseAction("release")
	if err != nil {
		t.Fatalf("parseAction: %v", err)
	}
	if action != elastic.ReleaseToLoad {
		t.Fatalf("parseAction = %v, want %v", action, elastic.ReleaseToLoad)
	}
	if _, err := parseAction("hover"); err == nil {
		t.Fatal("parseAction accepted an unknown value, want error")
	}
}

type nullHost struct{}

func (nullHost) IsAtTop() bool         { return true }
func (nullHost) IsAtBottom() bool      { return false }
func (nullHost) ItemCount() int        { return 0 }
func (nullHost) VisibleItemCount() int { return 0 }
func (nullHost) HeaderSlots() int      { return 0 }
func (nullHost) AttachHeader()         {}
func (nullHost) DetachHeader()         {}
func (nullHost) AttachFooter()         {}
func (nullHost) DetachFooter()         {}
func (nullHost) IsHeaderShowing() bool { return true }
func (nullHost) IsFooterShowing() bool { return true }
func (nullHost) RevealFooter()         {}

func TestApply(t *testing.T) {
	ctrl, err := elastic.NewController(nullHost{}, nil, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	enabled := true
	cfg := &Config{}
	cfg.Header.Alignment = "center"
	cfg.Footer.Enabled = &enabled
	cfg.Footer.Alignment = "bottom"
	cfg.Footer.Action = "click"

	if err := cfg.Apply(ctrl); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if ctrl.UpdateHeader().Alignment() != elastic.AlignCenter {
		t.Fatalf("header alignment = %v, want %v", ctrl.UpdateHeader().Alignment(), elastic.AlignCenter)
	}
	if !ctrl.IsLoadFooterEnabled() {
		t.Fatal("footer not enabled")
	}
	if ctrl.LoadFooter().LoadAction() != elastic.ClickToLoad {
		t.Fatalf("footer action = %v, want %v", ctrl.LoadFooter().LoadAction(), elastic.ClickToLoad)
	}
}

func TestApplyBadAlignment(t *testing.T) {
	ctrl, err := elastic.NewController(nullHost{}, nil, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	cfg := &Config{}
	cfg.Header.Alignment = "diagonal"
	if err := cfg.Apply(ctrl); err == nil {
		t.Fatal("Apply accepted an unknown alignment, want error")
	}
}
