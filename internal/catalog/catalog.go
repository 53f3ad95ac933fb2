package catalog

import (
	"fmt"
	"strings"
)

type Idea struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Type              string   `json:"type"`
	Difficulty        string   `json:"difficulty"`
	Tags              []string `json:"tags"`
	ShortDescription  string   `json:"shortDescription,omitempty"`
	Concept           string   `json:"concept,omitempty"`
	CoreMechanics     []string `json:"coreMechanics"`
	FunHooks          []string `json:"funHooks"`
	MonetizationIdeas []string `json:"monetizationIdeas"`
	Thumbnail3DURL    string   `json:"thumbnail3DUrl,omitempty"`
	HeroImageURL      string   `json:"heroImageUrl,omitempty"`
	RecommendedLevel  string   `json:"recommendedLevel,omitempty"`
}

type Step struct {
	StepNumber  int    `json:"stepNumber"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

type ChecklistItem struct {
	TaskID     string `json:"taskId"`
	Label      string `json:"label"`
	IsOptional bool   `json:"isOptional"`
}

type Path struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Steps        []Step          `json:"steps"`
	Checklist    []ChecklistItem `json:"checklist"`
	Tips         []string        `json:"tips"`
	HeroImageURL string          `json:"heroImageUrl,omitempty"`
}

type World struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Tags             []string `json:"tags"`
	VisualStyleNotes string   `json:"visualStyleNotes,omitempty"`
	UseCases         []string `json:"useCases"`
	BuildChecklist   []string `json:"buildChecklist"`
	Image3DURL       string   `json:"image3DUrl,omitempty"`
}

// Store holds the static reference catalogs. Built once at process start
// and never mutated, so it is safe for concurrent reads without locking.
type Store struct {
	ideas  []Idea
	paths  []Path
	worlds []World
}

func NewStore() *Store {
	return &Store{
		ideas:  seedIdeas(),
		paths:  seedPaths(),
		worlds: seedWorlds(),
	}
}

type IdeaFilter struct {
	Type       string
	Difficulty string
	Tag        string
	Query      string
}

type WorldFilter struct {
	Tag   string
	Query string
}

// ListIdeas returns ideas matching every set filter, in catalog order.
func (s *Store) ListIdeas(f IdeaFilter) []Idea {
	out := make([]Idea, 0, len(s.ideas))
	for _, i := range s.ideas {
		if f.Type != "" && !strings.EqualFold(i.Type, f.Type) {
			continue
		}
		if f.Difficulty != "" && !strings.EqualFold(i.Difficulty, f.Difficulty) {
			continue
		}
		if f.Tag != "" && !hasTag(i.Tags, f.Tag) {
			continue
		}
		if f.Query != "" && !textMatch(f.Query, i.Title, i.Concept) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (s *Store) GetIdea(id string) *Idea {
	for i := range s.ideas {
		if s.ideas[i].ID == id {
			return &s.ideas[i]
		}
	}
	return nil
}

func (s *Store) ListPaths() []Path {
	out := make([]Path, len(s.paths))
	copy(out, s.paths)
	return out
}

func (s *Store) GetPath(id string) *Path {
	for i := range s.paths {
		if s.paths[i].ID == id {
			return &s.paths[i]
		}
	}
	return nil
}

func (s *Store) ListWorlds(f WorldFilter) []World {
	out := make([]World, 0, len(s.worlds))
	for _, w := range s.worlds {
		if f.Tag != "" && !hasTag(w.Tags, f.Tag) {
			continue
		}
		if f.Query != "" && !textMatch(f.Query, w.Title, w.VisualStyleNotes) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (s *Store) GetWorld(id string) *World {
	for i := range s.worlds {
		if s.worlds[i].ID == id {
			return &s.worlds[i]
		}
	}
	return nil
}

// Tag matching is exact and case-sensitive; text matching is a
// case-insensitive substring check over title plus description.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func textMatch(query, title, description string) bool {
	haystack := strings.ToLower(title + " " + description)
	return strings.Contains(haystack, strings.ToLower(query))
}

// shortDescription truncates a concept to 120 runes for list views.
func shortDescription(concept string) string {
	r := []rune(concept)
	if len(r) <= 120 {
		return concept
	}
	return string(r[:120]) + "…"
}

func checklist(pathID string, items ...ChecklistItem) []ChecklistItem {
	for i := range items {
		items[i].TaskID = fmt.Sprintf("%s-t%d", pathID, i)
	}
	return items
}

func steps(items ...Step) []Step {
	for i := range items {
		items[i].StepNumber = i + 1
	}
	return items
}
