package entity

import "github.com/CrestNiraj12/schoolreview/domain"

// commentPager accumulates comment pages in fetch order.
//
// gen identifies the accumulator generation: a page-1 reset bumps it so
// that a load-more page issued against the old list is discarded when it
// lands after the reset.
type commentPager struct {
	comments  []domain.Comment
	page      int
	hasMore   bool
	loading   bool
	resetting bool
	gen       int
}

// beginReset starts a page-1 fetch and returns the generation to tag it with.
func (p *commentPager) beginReset() int {
	p.gen++
	p.loading = false
	p.resetting = true
	return p.gen
}

// applyReset replaces the accumulator with page 1.
func (p *commentPager) applyReset(gen int, pg domain.CommentPage) bool {
	if gen != p.gen || !p.resetting {
		return false
	}
	p.comments = append([]domain.Comment(nil), pg.Comments...)
	p.page = 1
	p.hasMore = pg.HasMore
	p.resetting = false
	return true
}

func (p *commentPager) failReset(gen int) bool {
	if gen != p.gen || !p.resetting {
		return false
	}
	p.resetting = false
	return true
}

// beginMore reserves the next page. It refuses while any page is in flight,
// before page 1 has landed, and once the server reported the last page.
func (p *commentPager) beginMore() (page, gen int, ok bool) {
	if p.loading || p.resetting || p.page == 0 || !p.hasMore {
		return 0, 0, false
	}
	p.loading = true
	return p.page + 1, p.gen, true
}

func (p *commentPager) applyMore(gen int, pg domain.CommentPage) bool {
	if gen != p.gen || !p.loading || pg.Page != p.page+1 {
		return false
	}
	p.comments = append(p.comments, pg.Comments...)
	p.page = pg.Page
	p.hasMore = pg.HasMore
	p.loading = false
	return true
}

func (p *commentPager) failMore(gen int) bool {
	if gen != p.gen || !p.loading {
		return false
	}
	p.loading = false
	return true
}

// applyDelta adjusts one comment's upvote count in place.
func (p *commentPager) applyDelta(id int64, delta int) bool {
	for i := range p.comments {
		if p.comments[i].ID == id {
			p.comments[i].Upvotes += delta
			return true
		}
	}
	return false
}

func (p *commentPager) find(id int64) (domain.Comment, bool) {
	for _, c := range p.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}
