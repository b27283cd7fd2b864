package services

// MaxProjectImages is the hard cap on images per project.
const MaxProjectImages = 5

// ImageSet is an ordered sequence of media URLs for one entity. The order
// is the display order: retained images keep their relative position and
// newly uploaded images are appended in upload-request order.
type ImageSet []string

// CanAccept reports whether n more images fit under the cap. It is checked
// before any upload starts so an oversized batch fails without a single
// network call.
func (s ImageSet) CanAccept(n int) error {
	if len(s)+n > MaxProjectImages {
		return &LimitExceededError{Limit: MaxProjectImages, Requested: len(s) + n}
	}
	return nil
}

// Merge appends uploaded URLs to the retained set, enforcing the cap.
func (s ImageSet) Merge(uploaded []string) (ImageSet, error) {
	if err := s.CanAccept(len(uploaded)); err != nil {
		return nil, err
	}
	merged := make(ImageSet, 0, len(s)+len(uploaded))
	merged = append(merged, s...)
	merged = append(merged, uploaded...)
	return merged, nil
}

// Remove drops a single reference by exact match. The underlying stored
// object is never deleted.
func (s ImageSet) Remove(url string) ImageSet {
	result := make(ImageSet, 0, len(s))
	removed := false
	for _, u := range s {
		if !removed && u == url {
			removed = true
			continue
		}
		result = append(result, u)
	}
	return result
}
