package response

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// mapAll converts a list, always returning a non-nil slice so an empty
// result encodes as [].
func mapAll[S any, D any](in []S, conv func(S) (D, error)) ([]D, error) {
	out := make([]D, 0, len(in))
	for _, v := range in {
		d, err := conv(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
