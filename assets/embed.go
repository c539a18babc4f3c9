package assets

import _ "embed"

// DefaultTuning is the baseline tuning file, applied when no external
// override file is present.
//
//go:embed tuning.yaml
var DefaultTuning []byte
