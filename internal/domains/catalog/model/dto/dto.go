package dto

type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GetOptionsResponse struct {
	Kind    string   `json:"kind"`
	Options []Option `json:"options"`
}

// Find returns the id of the first option with the given display name.
func (r *GetOptionsResponse) Find(name string) (int64, bool) {
	for _, option := range r.Options {
		if option.Name == name {
			return option.ID, true
		}
	}

	return 0, false
}
