package database

import (
	"encoding/json"
	"fmt"
	"log"

	"cinequiz_backend/internal/config"
	"cinequiz_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.QuizQuestion{},
		&model.Archetype{},
		&model.AssessmentResult{},
		&model.AssessmentAnswer{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedArchetypes(db)
	seedQuestions(db)

	return db, nil
}

// seedArchetypes installs the default catalog when the table is empty. Order
// matters: the broad-range Casual Viewer sits first so the matcher always
// has a fallback.
func seedArchetypes(db *gorm.DB) {
	var count int64
	db.Model(&model.Archetype{}).Count(&count)
	if count > 0 {
		return
	}

	fullRanges := make(map[string]map[string]int, 12)
	for _, d := range []string{
		"escapism", "fantasy", "emotion", "education", "complexity", "excitement",
		"pacing", "social", "rewatch", "comfort", "variety", "curiosity",
	} {
		fullRanges[d] = map[string]int{"min": 0, "max": 10}
	}
	baselineRanges, _ := json.Marshal(fullRanges)

	defaults := []model.Archetype{
		{
			Name:            "Casual Viewer",
			Description:     "You watch for the joy of it, no agenda, no ritual. Every screening is a small holiday.",
			DimensionRanges: baselineRanges,
			RandomThoughts:  json.RawMessage(`["A good movie is a good evening","Popcorn optional, enjoyment mandatory","Sometimes the remote picks for you"]`),
			Traits:          json.RawMessage(`["Easygoing","Open-minded","Spontaneous"]`),
			OrderIndex:      0,
		},
		{
			Name:            "Escapist Dreamer",
			Description:     "Screens are portals. You pick films that lift you clean out of the week and set you down somewhere impossible.",
			DimensionRanges: json.RawMessage(`{"escapism":{"min":7,"max":10},"fantasy":{"min":6,"max":10},"comfort":{"min":3,"max":10}}`),
			RandomThoughts:  json.RawMessage(`["Reality is just the loading screen","Somewhere a dragon is waiting for you","The best maps are of places that don't exist"]`),
			Traits:          json.RawMessage(`["Imaginative","Wistful","World-builder at heart"]`),
			OrderIndex:      1,
		},
		{
			Name:            "Cozy Rewatcher",
			Description:     "You have seen it before. That is the point. Familiar films are a warm blanket with a runtime.",
			DimensionRanges: json.RawMessage(`{"rewatch":{"min":7,"max":10},"comfort":{"min":7,"max":10},"excitement":{"min":0,"max":5}}`),
			RandomThoughts:  json.RawMessage(`["The hundredth viewing hits different","Comfort films are self-care","You already know the ending, and that's perfect"]`),
			Traits:          json.RawMessage(`["Loyal","Nostalgic","Ritualist"]`),
			OrderIndex:      2,
		},
		{
			Name:            "Thrill Seeker",
			Description:     "If your pulse stays flat, the film failed. You chase momentum, spectacle, and the edge of your seat.",
			DimensionRanges: json.RawMessage(`{"excitement":{"min":7,"max":10},"pacing":{"min":6,"max":10},"complexity":{"min":0,"max":6}}`),
			RandomThoughts:  json.RawMessage(`["Brakes are for other genres","The explosion was character development","Slow burns are for candles"]`),
			Traits:          json.RawMessage(`["Adrenalized","Impatient","All-in"]`),
			OrderIndex:      3,
		},
		{
			Name:            "Cinephile Scholar",
			Description:     "You watch with a notebook in your head. Structure, craft, context: the film is the text and you love to read.",
			DimensionRanges: json.RawMessage(`{"complexity":{"min":7,"max":10},"education":{"min":6,"max":10},"curiosity":{"min":6,"max":10}}`),
			RandomThoughts:  json.RawMessage(`["Every frame a thesis","The director's cut is the director's argument","Three hours is a feature, not a bug"]`),
			Traits:          json.RawMessage(`["Analytical","Patient","Encyclopedic"]`),
			OrderIndex:      4,
		},
		{
			Name:            "Social Screener",
			Description:     "Movies are a group sport. The film matters, but the room matters more: reactions, debates, shared snacks.",
			DimensionRanges: json.RawMessage(`{"social":{"min":7,"max":10},"variety":{"min":4,"max":10}}`),
			RandomThoughts:  json.RawMessage(`["A film unshared is a film half-watched","The group chat is the real post-credits scene","Movie night is sacred"]`),
			Traits:          json.RawMessage(`["Gregarious","Host energy","Debate-ready"]`),
			OrderIndex:      5,
		},
		{
			Name:            "Genre Nomad",
			Description:     "Yesterday a western, today Korean horror, tomorrow a silent classic. You collect genres like passport stamps.",
			DimensionRanges: json.RawMessage(`{"variety":{"min":7,"max":10},"curiosity":{"min":5,"max":10}}`),
			RandomThoughts:  json.RawMessage(`["Genres are suggestions","The algorithm will never pin you down","Next stop: anywhere"]`),
			Traits:          json.RawMessage(`["Restless","Adventurous","Unpredictable"]`),
			OrderIndex:      6,
		},
		{
			Name:            "Heartstring Chaser",
			Description:     "You keep tissues by the remote on purpose. Films are feelings delivery systems and you want the full dose.",
			DimensionRanges: json.RawMessage(`{"emotion":{"min":7,"max":10},"comfort":{"min":3,"max":8}}`),
			RandomThoughts:  json.RawMessage(`["Crying at movies is cardio for the soul","The quiet scenes hit hardest","Feelings are the real special effects"]`),
			Traits:          json.RawMessage(`["Empathetic","Tender","Unashamed crier"]`),
			OrderIndex:      7,
		},
	}
	for i := range defaults {
		defaults[i].Enabled = true
		db.Create(&defaults[i])
	}
}

// seedQuestions installs a starter quiz when the table is empty.
func seedQuestions(db *gorm.DB) {
	var count int64
	db.Model(&model.QuizQuestion{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.QuizQuestion{
		{
			Text:             "After a long week, what do you want a movie to do for you?",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"Take me somewhere else","emoji":"🚀"},{"label":"Make me feel something","emoji":"❤️"},{"label":"Teach me something new","emoji":"🧠"},{"label":"Get my heart racing","emoji":"⚡"}]`),
			DimensionWeights: json.RawMessage(`{"Take me somewhere else":{"escapism":3,"fantasy":2},"Make me feel something":{"emotion":3,"comfort":1},"Teach me something new":{"education":3,"curiosity":2},"Get my heart racing":{"excitement":3,"pacing":2}}`),
			OrderIndex:       1,
		},
		{
			Text:             "How do you usually watch?",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"Alone, fully immersed"},{"label":"With friends and snacks"},{"label":"With family"},{"label":"Depends on my mood"}]`),
			DimensionWeights: json.RawMessage(`{"Alone, fully immersed":{"escapism":2,"complexity":1},"With friends and snacks":{"social":3,"comfort":1},"With family":{"social":2,"comfort":2},"Depends on my mood":{"variety":2,"curiosity":1}}`),
			OrderIndex:       2,
		},
		{
			Text:             "A film you loved is on again tonight.",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"Instant rewatch"},{"label":"Once was enough"},{"label":"Maybe just the best scenes"}]`),
			DimensionWeights: json.RawMessage(`{"Instant rewatch":{"rewatch":3,"comfort":2},"Once was enough":{"variety":2,"curiosity":1},"Maybe just the best scenes":{"rewatch":1,"pacing":1}}`),
			OrderIndex:       3,
		},
		{
			Text:             "Pick the poster that pulls you in.",
			QuestionType:     model.VisualCards,
			Options:          json.RawMessage(`[{"label":"Neon sci-fi skyline","description":"Chrome towers under two moons"},{"label":"Two people talking in the rain","description":"No effects, all nerve"},{"label":"A labyrinth of clues","description":"Red string and polaroids"},{"label":"Explosion at golden hour","description":"Walking away, not looking back"}]`),
			DimensionWeights: json.RawMessage(`{"Neon sci-fi skyline":{"fantasy":3,"escapism":2},"Two people talking in the rain":{"emotion":3},"A labyrinth of clues":{"complexity":3,"curiosity":2},"Explosion at golden hour":{"excitement":3,"pacing":2}}`),
			OrderIndex:       4,
		},
		{
			Text:             "A three-hour subtitled slow burn just dropped.",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"Sign me up"},{"label":"Only if it's acclaimed"},{"label":"Hard pass"}]`),
			DimensionWeights: json.RawMessage(`{"Sign me up":{"complexity":3,"education":2,"pacing":-1},"Only if it's acclaimed":{"curiosity":2,"complexity":1},"Hard pass":{"pacing":2,"excitement":1}}`),
			OrderIndex:       5,
		},
		{
			Text:             "Your watchlist is...",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"A curated canon"},{"label":"Pure chaos, every genre"},{"label":"Comfort favorites on repeat"},{"label":"Whatever everyone's talking about"}]`),
			DimensionWeights: json.RawMessage(`{"A curated canon":{"education":2,"complexity":2},"Pure chaos, every genre":{"variety":3,"curiosity":2},"Comfort favorites on repeat":{"rewatch":2,"comfort":3},"Whatever everyone's talking about":{"social":2,"variety":1}}`),
			OrderIndex:       6,
		},
		{
			Text:             "The credits roll. What now?",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"Straight to the making-of"},{"label":"Sit in silence and feel"},{"label":"Queue up the next one"},{"label":"Text everyone about it"}]`),
			DimensionWeights: json.RawMessage(`{"Straight to the making-of":{"curiosity":3,"education":2},"Sit in silence and feel":{"emotion":3},"Queue up the next one":{"variety":2,"pacing":2},"Text everyone about it":{"social":3}}`),
			OrderIndex:       7,
		},
		{
			Text:             "Your ideal pacing?",
			QuestionType:     model.SingleChoice,
			Options:          json.RawMessage(`[{"label":"Slow and deliberate"},{"label":"Relentless"},{"label":"A steady build"}]`),
			DimensionWeights: json.RawMessage(`{"Slow and deliberate":{"complexity":2,"emotion":1},"Relentless":{"pacing":3,"excitement":2},"A steady build":{"comfort":1,"emotion":1,"pacing":1}}`),
			OrderIndex:       8,
		},
	}
	for i := range defaults {
		defaults[i].IsActive = true
		db.Create(&defaults[i])
	}
}
