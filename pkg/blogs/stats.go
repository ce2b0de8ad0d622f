package blogs

import "errors"

var ErrEmptyInput = errors.New("empty blog list")

// TotalLikes sums likes over the list. A nil or empty list has zero likes.
func TotalLikes(blogs []*Blog) int64 {
	switch len(blogs) {
	case 0:
		return 0
	case 1:
		return blogs[0].Likes
	}

	var total int64
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}

// MostLiked returns the first blog holding the maximum like count.
func MostLiked(blogs []*Blog) (*Favorite, error) {
	if len(blogs) == 0 {
		return nil, ErrEmptyInput
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return best.Favorite(), nil
}

// MostProlificAuthor returns the author with the most blogs. On a tie the
// author that reached the top count first while scanning wins.
func MostProlificAuthor(blogs []*Blog) (*AuthorStats, error) {
	if len(blogs) == 0 {
		return nil, ErrEmptyInput
	}

	counts := make(map[string]int, len(blogs))
	best := &AuthorStats{}
	for _, b := range blogs {
		counts[b.Author]++
		if counts[b.Author] > best.Blogs {
			best.Author = b.Author
			best.Blogs = counts[b.Author]
		}
	}

	return best, nil
}
