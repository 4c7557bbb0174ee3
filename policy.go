package gesture

// policy gates which detectors run for a frame. A kind is evaluated iff it
// is enabled and not skipped. Skips last until the current stream completes.
type policy struct {
	enabled KindSet
	skipped KindSet
}

func (p *policy) shouldEvaluate(k Kind) bool {
	return p.enabled.Has(k) && !p.skipped.Has(k)
}

// Enable turns detection on for the given kinds. Enabling persists across
// streams until Disable is called.
func (r *Recognizer) Enable(kinds ...Kind) {
	r.policy.enabled.Add(kinds...)
}

// Disable turns detection off for the given kinds. Other kinds are not
// affected.
func (r *Recognizer) Disable(kinds ...Kind) {
	r.policy.enabled.Remove(kinds...)
}

// EnableAll turns detection on for every kind.
func (r *Recognizer) EnableAll() {
	r.policy.enabled = AllKinds()
}

// DisableAll turns detection off for every kind.
func (r *Recognizer) DisableAll() {
	r.policy.enabled.Clear()
}

// IsEnabled reports whether k is enabled.
func (r *Recognizer) IsEnabled(k Kind) bool {
	return r.policy.enabled.Has(k)
}

// Enabled returns a copy of the enabled set.
func (r *Recognizer) Enabled() KindSet {
	return r.policy.enabled
}

// Skip suppresses the given kinds for the rest of the current stream. The
// skip is cleared automatically once an up or cancel event has been
// processed. In-flight detector state is kept.
func (r *Recognizer) Skip(kinds ...Kind) {
	r.policy.skipped.Add(kinds...)
}

// Unskip lifts a skip before the stream ends.
func (r *Recognizer) Unskip(kinds ...Kind) {
	r.policy.skipped.Remove(kinds...)
}

// SkipAll suppresses every kind for the rest of the current stream.
func (r *Recognizer) SkipAll() {
	r.policy.skipped = AllKinds()
}

// UnskipAll lifts every skip.
func (r *Recognizer) UnskipAll() {
	r.policy.skipped.Clear()
}

// IsSkipped reports whether k is skipped for the current stream.
func (r *Recognizer) IsSkipped(k Kind) bool {
	return r.policy.skipped.Has(k)
}

// Skipped returns a copy of the skipped set.
func (r *Recognizer) Skipped() KindSet {
	return r.policy.skipped
}
