package engine

import "fmt"

// StoryProgress is the completed share of the catalog as a 0..100 percent.
func StoryProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := 100 * completed / total
	if pct > 100 {
		pct = 100
	}
	return pct
}

// advanceChaptersLocked recomputes story progress and moves through every
// chapter that is now finished. Instances of earlier chapters stay in the
// profile. It returns the ids of the objectives added.
func (e *Engine) advanceChaptersLocked(b *batch) []string {
	if !e.rules.Chapters {
		return nil
	}
	p := e.profile
	p.StoryProgress = StoryProgress(len(p.Completed), e.catalog.Len())

	var added []string
	for {
		ids, ok := p.AdvanceChapter(e.catalog)
		if !ok {
			break
		}
		added = append(added, ids...)
		e.log.Info("chapter advanced", "chapter", p.Chapter)
		b.emit(Event{
			Kind:    EventChapterAdvanced,
			Chapter: p.Chapter,
			Text:    fmt.Sprintf("Chapter %d begins", p.Chapter),
		})
	}
	return added
}
