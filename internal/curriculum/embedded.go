package curriculum

import _ "embed"

// defaultCurriculum is the qualification the engine schedules when no
// curriculum file is configured.
//
//go:embed default_curriculum.yaml
var defaultCurriculum []byte
