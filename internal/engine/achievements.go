package engine

import (
	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

// Achievement represents a badge the player can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker derives badges from a profile. Nothing is stored;
// badges are recomputed on every call.
type AchievementChecker struct {
	player  *profile.Profile
	catalog *quest.Catalog
}

func NewAchievementChecker(player *profile.Profile, catalog *quest.Catalog) *AchievementChecker {
	return &AchievementChecker{player: player, catalog: catalog}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Objective milestones
		c.completedAchievement("first_steps", "First Steps", "Complete an objective", "🌱", 1),
		c.completedAchievement("helping_hand", "Helping Hand", "Complete 5 objectives", "🌿", 5),
		c.allCompletedAchievement("siida_elder", "Siida Elder", "Complete every objective", "🌟"),

		// Village
		c.buildingAchievement("first_lavvu", "First Lávvu", "Build a tent", "⛺", "tent"),
		c.buildingAchievement("herder", "Herder", "Build a reindeer farm", "🦌", "reindeer-farm"),
		c.unlockAchievement("collector", "Collector", "Unlock every decoration", "🎁"),

		// Story
		c.artifactAchievement("keeper", "Keeper of Things", "Find an artifact", "🪶", 1),
		c.artifactAchievement("treasury", "Treasury", "Find 6 artifacts", "🏺", 6),
		c.chapterAchievement("new_chapter", "The Story Unfolds", "Reach chapter 2", "📖", 2),
		c.chapterAchievement("last_chapter", "Polar Night", "Reach the final chapter", "☀️", c.catalog.MaxChapter()),

		// Leveling
		c.levelAchievement("growing", "Growing", "Reach level 3", "⭐", 3),

		// Exploring
		c.visitAchievement("wanderer", "Wanderer", "Visit every location", "🧭"),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) completedAchievement(id, name, desc, icon string, count int) Achievement {
	earned := len(c.player.Completed) >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) allCompletedAchievement(id, name, desc, icon string) Achievement {
	earned := c.catalog.Len() > 0
	for _, tid := range c.catalog.IDs() {
		if !c.player.IsCompleted(tid) {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) buildingAchievement(id, name, desc, icon, buildingType string) Achievement {
	earned := false
	for _, b := range c.player.Buildings {
		if b.Type == buildingType {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) unlockAchievement(id, name, desc, icon string) Achievement {
	earned := true
	for _, d := range quest.Decorations() {
		if !c.player.IsUnlocked(d.ID) {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) artifactAchievement(id, name, desc, icon string, count int) Achievement {
	earned := len(c.player.Artifacts) >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) chapterAchievement(id, name, desc, icon string, chapter int) Achievement {
	earned := chapter > 1 && c.player.Chapter >= chapter
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := c.player.Level >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) visitAchievement(id, name, desc, icon string) Achievement {
	earned := true
	for _, l := range quest.Locations() {
		if !profile.Contains(c.player.LocationsVisited, l.ID) {
			earned = false
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// Achievements returns the player's badges.
func (e *Engine) Achievements() []Achievement {
	p := e.Profile()
	return NewAchievementChecker(p, e.catalog).GetAchievements()
}
