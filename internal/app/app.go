package app

const (
	Name       = "inheritance-sim"
	Title      = "Multilevel Inheritance Simulator"
	Author     = "Andrea Grandi"
	License    = "MIT"
	ConfigDir  = "inheritance-sim"
	PresetsDir = "presets"
)

var Version = "0.1.0"

// App carries the identity shown on the about page and in the TUI title.
type App struct {
	Name    string
	Title   string
	Version string
	Author  string
	License string
}

func New() *App {
	return &App{
		Name:    Name,
		Title:   Title,
		Version: Version,
		Author:  Author,
		License: License,
	}
}

func (a *App) GetFullVersion() string {
	return a.Name + " version " + a.Version
}

// Credits returns a one-line footer with version, author and license.
func (a *App) Credits() string {
	return a.GetFullVersion() + " · " + a.Author + " · " + a.License + " license"
}
