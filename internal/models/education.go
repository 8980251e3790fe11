package models

const (
	TopicBasics      = "basics"
	TopicStress      = "stress"
	TopicMindfulness = "mindfulness"
	TopicCoping      = "coping"
	TopicSleep       = "sleep"
	TopicNutrition   = "nutrition"
)

var Topics = []string{TopicBasics, TopicStress, TopicMindfulness, TopicCoping, TopicSleep, TopicNutrition}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Technique struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Article is one piece of educational reading. Content is Markdown.
type Article struct {
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	KeyPoints  []string            `json:"key_points,omitempty"`
	Techniques []Technique         `json:"techniques,omitempty"`
	Benefits   []string            `json:"benefits,omitempty"`
	Practices  []string            `json:"practices,omitempty"`
	Examples   map[string][]string `json:"examples,omitempty"`
	Resources  []Link              `json:"resources,omitempty"`
}

type Topic struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Articles []Article `json:"articles"`
}
