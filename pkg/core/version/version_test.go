package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(App) {
		t.Errorf("App version %q is not semantic", App)
	}
	if Language == "" {
		t.Error("Language version is empty")
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.App != App {
		t.Errorf("App = %v, want %v", info.App, App)
	}
	if info.Language != Language {
		t.Errorf("Language = %v, want %v", info.Language, Language)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %v", info.Platform)
	}
}

func TestInfo_String(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "mcalc v"+App) {
		t.Errorf("String() = %v, want prefix mcalc v%s", s, App)
	}
	if !strings.Contains(s, "MCL "+Language) {
		t.Errorf("String() = %v, want language version", s)
	}
}
