// Package settings defines the analysis settings record produced by the check dialog.
package settings

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultJobs is used whenever the worker-count entry cannot be used.
	DefaultJobs = 1
	// MaxJobs caps the worker count accepted from user input.
	MaxJobs = 1024
)

// Settings holds the options handed to the analysis engine.
// It is a plain value; two records with equal fields compare equal with ==.
type Settings struct {
	ShowAll              bool
	CheckCodingStyle     bool
	ErrorsOnly           bool
	Verbose              bool
	Force                bool
	XMLOutput            bool
	CheckUnusedFunctions bool
	SecurityChecks       bool
	VCLChecks            bool
	Jobs                 int
}

// Defaults returns the built-in settings used on a first run.
func Defaults() Settings {
	return Settings{
		ShowAll: true,
		Jobs:    DefaultJobs,
	}
}

// ParseJobs converts the worker-count text to a job count. Surrounding
// whitespace is ignored; anything unparsable or below 1 yields DefaultJobs.
func ParseJobs(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return DefaultJobs
	}
	if n > MaxJobs {
		return MaxJobs
	}
	return n
}

// String returns a compact summary of the enabled options.
func (s Settings) String() string {
	var on []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"all", s.ShowAll},
		{"style", s.CheckCodingStyle},
		{"errors-only", s.ErrorsOnly},
		{"verbose", s.Verbose},
		{"force", s.Force},
		{"xml", s.XMLOutput},
		{"unused-functions", s.CheckUnusedFunctions},
		{"security", s.SecurityChecks},
		{"vcl", s.VCLChecks},
	} {
		if f.set {
			on = append(on, f.name)
		}
	}
	return fmt.Sprintf("jobs=%d options=[%s]", s.Jobs, strings.Join(on, ","))
}
