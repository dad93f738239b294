package pipeline

// RunStats tracks aggregate counters across a batch or verify run.
type RunStats struct {
	Profiles      int `json:"profiles" yaml:"profiles"`
	Releases      int `json:"releases" yaml:"releases"`
	Rows          int `json:"rows" yaml:"rows"`
	Skipped       int `json:"skipped" yaml:"skipped"`
	Sets          int `json:"sets" yaml:"sets"`
	Parallels     int `json:"parallels" yaml:"parallels"`
	Cards         int `json:"cards" yaml:"cards"`
	Degenerate    int `json:"degenerate" yaml:"degenerate"`
	Collisions    int `json:"collisions" yaml:"collisions"`
	Disambiguated int `json:"disambiguated" yaml:"disambiguated"`
	Verified      int `json:"verified" yaml:"verified"`
	Drift         int `json:"drift" yaml:"drift"`
	Failed        int `json:"failed" yaml:"failed"`
}

// Add accumulates o into s.
func (s *RunStats) Add(o RunStats) {
	s.Profiles += o.Profiles
	s.Releases += o.Releases
	s.Rows += o.Rows
	s.Skipped += o.Skipped
	s.Sets += o.Sets
	s.Parallels += o.Parallels
	s.Cards += o.Cards
	s.Degenerate += o.Degenerate
	s.Collisions += o.Collisions
	s.Disambiguated += o.Disambiguated
	s.Verified += o.Verified
	s.Drift += o.Drift
	s.Failed += o.Failed
}

// OK reports whether the run produced nothing that should fail the command:
// no degenerate slug, no unresolved collision, no drift and no failed input.
func (s *RunStats) OK() bool {
	return s.Degenerate == 0 && s.Collisions == 0 && s.Drift == 0 && s.Failed == 0
}
