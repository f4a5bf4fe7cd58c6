package smppcodec

/*
fit.go implements descriptor refinement (spec §4.5, §9): producing a
tightened descriptor bounded by a smaller size, used by the TLV layer
to instantiate a generic descriptor against a TLV's declared length.
*/

// Quirk selects between the two documented behaviors of Fit on a
// ListDesc, an ambiguity spec §9 flags explicitly rather than resolves.
type Quirk int

const (
	// QuirksBitCompatible preserves the source codec's List behavior:
	// fit on a List leaves Size unchanged even when newSize is smaller.
	// This is the default, matching spec §9's "a bit-compatible
	// implementation preserves the original."
	QuirksBitCompatible Quirk = iota

	// QuirksStrict tightens a List's Size to newSize like every other
	// narrowing descriptor, correcting what spec §9 calls "probably a
	// bug" in the source behavior.
	QuirksStrict
)

// QuirksMode selects which List-fit behavior Fit uses. Package-level
// by design: this is the one behavioral switch the engine carries
// (spec §9 — "expose both behaviors as a configuration").
var QuirksMode = QuirksBitCompatible

// Fit returns a descriptor with reduced capacity, bounded by newSize
// (spec §4.5). Constant, Composite and Union are returned unchanged.
func Fit(d Descriptor, newSize int) Descriptor {
	switch desc := d.(type) {
	case IntDesc:
		desc.Size = clamp(newSize, 0, desc.Size)
		return desc
	case CStringDesc:
		if newSize <= desc.Size {
			desc.Size = newSize
			desc.Fixed = true
		}
		return desc
	case OctetStringDesc:
		if newSize <= desc.Size {
			desc.Size = newSize
			desc.Fixed = true
		}
		return desc
	case ListDesc:
		if newSize < desc.Size && QuirksMode == QuirksStrict {
			desc.Size = newSize
		}
		return desc
	default:
		return d
	}
}
