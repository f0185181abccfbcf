package plottools

// Config configures the plottools module.
type Config struct {
	// AppName determines the config directory name.
	// Example: "plottools" → ~/.config/plottools/ on Linux
	AppName string

	// FigureDir is the default directory checked for convention
	// violations. Empty means the current directory.
	FigureDir string

	// StyleName is the default style preset: "screen", "paper", or
	// "sketch".
	StyleName string

	// PalettePath overrides the built-in palettes with a custom
	// palette file. If empty, the platform config dir is probed for
	// palette.json.
	PalettePath string
}

// Rule identifies a convention rule a finding refers to.
type Rule string

// The authoring conventions the checker enforces.
const (
	// RuleMissingFigure: every figure script must have a generated
	// figure with the same base filename.
	RuleMissingFigure Rule = "missing-figure"

	// RuleOrphanFigure: every figure should come from a script with
	// the same base filename.
	RuleOrphanFigure Rule = "orphan-figure"

	// RulePickledData: scripts must read display data from .npz or
	// .csv files, never from pickled data.
	RulePickledData Rule = "pickled-data"

	// RuleMissingData: a data file referenced by a script must exist.
	RuleMissingData Rule = "missing-data"

	// RuleStaleFigure: a figure must not be older than its script or
	// its data files.
	RuleStaleFigure Rule = "stale-figure"
)

// Severity grades a finding.
type Severity string

// Finding severities. Errors violate the conventions; warnings point
// at probable oversights.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single convention violation or warning.
type Finding struct {
	// Rule names the violated convention.
	Rule Rule `json:"rule"`

	// Severity grades the finding.
	Severity Severity `json:"severity"`

	// Script is the figure script the finding belongs to, relative to
	// the checked directory. Empty for orphan figures.
	Script string `json:"script,omitempty"`

	// Path is the file the finding is about, relative to the checked
	// directory.
	Path string `json:"path"`

	// Message describes the finding.
	Message string `json:"message"`
}

// Report is the result of checking a figure directory.
type Report struct {
	// Dir is the checked directory.
	Dir string `json:"dir"`

	// Scripts, Figures, and DataFiles count the classified files.
	Scripts   int `json:"scripts"`
	Figures   int `json:"figures"`
	DataFiles int `json:"data_files"`

	// Findings lists all violations and warnings, ordered by path.
	Findings []Finding `json:"findings"`
}

// OK reports whether the check passed, i.e. no error-severity
// findings exist.
func (r Report) OK() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Counts returns the number of error and warning findings.
func (r Report) Counts() (errors, warnings int) {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// CheckConfig configures a convention check.
type CheckConfig struct {
	// Dir is the figure directory to check.
	Dir string

	// ScriptExts are the figure script extensions.
	// Default: .py
	ScriptExts []string

	// FigureExts are the generated figure extensions.
	// Default: .pdf, .png, .svg, .eps
	FigureExts []string

	// DataExts are the allowed display-data extensions.
	// Default: .npz, .csv
	DataExts []string

	// ForbiddenExts are data extensions scripts must not read.
	// Default: .pkl, .pickle
	ForbiddenExts []string
}

// DefaultCheckConfig returns the check configuration for the standard
// conventions.
func DefaultCheckConfig(dir string) CheckConfig {
	return CheckConfig{
		Dir:           dir,
		ScriptExts:    []string{".py"},
		FigureExts:    []string{".pdf", ".png", ".svg", ".eps"},
		DataExts:      []string{".npz", ".csv"},
		ForbiddenExts: []string{".pkl", ".pickle"},
	}
}
