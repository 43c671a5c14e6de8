package augment

// Outcome is the result of one augmentation call. Callers never receive a
// bare error: they pick the text or substitute their own fallback.
type Outcome struct {
	Text string
	Err  error
}

// OK reports whether the call produced text.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Text != ""
}

// TextOr returns the generated text, or fallback when the call failed.
func (o Outcome) TextOr(fallback string) string {
	if !o.OK() {
		return fallback
	}
	return o.Text
}
