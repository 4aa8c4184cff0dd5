package schedule

const (
	RepeatDaily = "daily"
	RepeatOnce  = "once"
)

// Window is an on/off window, times in 24h "HH:MM". An empty Repeat means
// daily; a "once" window is cleared after its off command fires.
type Window struct {
	OnTime  string `json:"on_time" validate:"required,datetime=15:04"`
	OffTime string `json:"off_time" validate:"required,datetime=15:04"`
	Repeat  string `json:"repeat" validate:"omitempty,oneof=daily once"`
}
