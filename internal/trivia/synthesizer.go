package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/krugerlabs/kruger-trivia/internal/config"
	"github.com/krugerlabs/kruger-trivia/internal/datasource"
)

var (
	// ErrInsufficientData means a category fetch succeeded but returned too
	// few distinct usable values for a question.
	ErrInsufficientData = errors.New("insufficient data for question")
	// ErrSourceUnavailable means the data source failed or returned a
	// malformed response.
	ErrSourceUnavailable = errors.New("data source unavailable")
)

type category string

const (
	categoryProject      category = "project"
	categoryArtifact     category = "artifact"
	categoryStars        category = "stars"
	categoryContributors category = "contributors"
	categoryContract     category = "contract"
	categorySecurity     category = "security"
	categoryMetric       category = "metric"
)

const (
	optionsPerQuestion = 3
	nameFetchLimit     = 20
	contractFetchLimit = 100
	securityFetchLimit = 100
	projectFetchLimit  = 200
	topMetricLimit     = 20
	displayNameMaxLen  = 25
)

const (
	introProject      = "🌟 Ready for a challenge? Here are three project names. One of them is a clever fake! Can you spot the twist?"
	introArtifact     = "🧩 Which of these is NOT a real open source artifact? Find the twist!"
	introStars        = "⭐ Star power! Two of these star counts are real. Which project is the twist?"
	introContributors = "👥 Crowd check! Two of these contributor counts are real. Which project is the twist?"
	introContract     = "📜 Contract check! Two of these are deployed smart contracts. Which one is the twist?"
	introSecurity     = "🔐 Security specials! Two of these security projects are real. Which is the twist?"
	introMetric       = "📈 Metric or myth? One of these is not a tracked metric. Spot the twist!"

	formatProject  = "'%s' is a real open source project."
	formatArtifact = "'%s' is a real open source artifact."
	formatContract = "'%s' is a deployed smart contract in the OSO data lake."
	formatSecurity = "'%s' is a real security-focused open source project."
	formatMetric   = "'%s' is a tracked metric in the OSO data lake."
)

// Generator synthesizes trivia questions from live analytics data, degrading
// to simpler categories and finally to the fixed fallback bank.
type Generator struct {
	repo datasource.Repository

	// rand.Rand is not safe for concurrent use.
	mu   sync.Mutex
	rand *rand.Rand
}

func NewGenerator(repo datasource.Repository, r *rand.Rand) *Generator {
	return &Generator{repo: repo, rand: r}
}

// Generate always returns a valid question. Category attempts are walked in
// random order; each failure demotes to the next attempt, then to the plain
// project-name category, then to the fallback bank.
func (g *Generator) Generate(ctx context.Context) Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	log := config.WithContext(ctx)

	categories := []category{
		categoryProject,
		categoryArtifact,
		categoryStars,
		categoryContributors,
		categoryContract,
		categorySecurity,
		categoryMetric,
	}
	g.rand.Shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})

	for _, cat := range categories {
		q, err := g.attempt(ctx, cat)
		if err != nil {
			log.WithError(err).WithField("category", string(cat)).Debug("Category attempt failed")
			continue
		}
		return q
	}

	if q, err := g.projectNameQuestion(ctx); err == nil {
		return q
	}

	log.Warn("Live question synthesis failed, serving a fallback question")
	return FallbackQuestions[g.rand.Intn(len(FallbackQuestions))]
}

func (g *Generator) attempt(ctx context.Context, cat category) (Question, error) {
	switch cat {
	case categoryProject:
		return g.nameQuestion(ctx, func(ctx context.Context) ([]string, error) {
			return g.repo.DisplayNames(ctx, nameFetchLimit)
		}, introProject, formatProject)
	case categoryArtifact:
		return g.nameQuestion(ctx, func(ctx context.Context) ([]string, error) {
			return g.repo.ArtifactNames(ctx, nameFetchLimit)
		}, introArtifact, formatArtifact)
	case categoryStars:
		return g.countQuestion(ctx, func(ctx context.Context) ([]datasource.ProjectMetric, error) {
			return g.repo.TopProjectsByStars(ctx, topMetricLimit)
		}, introStars, "'%s' has over %d stars on GitHub.")
	case categoryContributors:
		return g.countQuestion(ctx, func(ctx context.Context) ([]datasource.ProjectMetric, error) {
			return g.repo.TopProjectsByContributors(ctx, topMetricLimit)
		}, introContributors, "'%s' has over %d contributors on GitHub.")
	case categoryContract:
		return g.nameQuestion(ctx, func(ctx context.Context) ([]string, error) {
			return g.repo.ContractNames(ctx, contractFetchLimit)
		}, introContract, formatContract)
	case categorySecurity:
		return g.nameQuestion(ctx, func(ctx context.Context) ([]string, error) {
			return g.repo.SecurityProjectNames(ctx, securityFetchLimit)
		}, introSecurity, formatSecurity)
	case categoryMetric:
		return g.keyMetricQuestion(ctx)
	default:
		return Question{}, fmt.Errorf("unknown category %q", cat)
	}
}

// projectNameQuestion is the last live rung before the fallback bank.
func (g *Generator) projectNameQuestion(ctx context.Context) (Question, error) {
	return g.nameQuestion(ctx, func(ctx context.Context) ([]string, error) {
		return g.repo.ProjectNames(ctx, projectFetchLimit)
	}, introProject, formatProject)
}

func (g *Generator) nameQuestion(ctx context.Context, fetch func(context.Context) ([]string, error), intro, format string) (Question, error) {
	names, err := fetch(ctx)
	if err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	usable := distinctPlausible(names)
	if len(usable) < optionsPerQuestion {
		return Question{}, ErrInsufficientData
	}

	choices := g.sample(usable, optionsPerQuestion)
	twist := MakeFake(g.rand, choices[0], usable)
	idx := g.rand.Intn(optionsPerQuestion)

	options := slices.Clone(choices)
	options[idx] = twist

	statements := make([]string, len(options))
	for i, opt := range options {
		statements[i] = fmt.Sprintf(format, opt)
	}

	return Question{
		Intro:       intro,
		Statements:  statements,
		AnswerIndex: idx,
		Options:     options,
		Twist:       twist,
		Outro:       defaultOutro,
	}, nil
}

func (g *Generator) countQuestion(ctx context.Context, fetch func(context.Context) ([]datasource.ProjectMetric, error), intro, format string) (Question, error) {
	records, err := fetch(ctx)
	if err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	seen := make(map[string]struct{}, len(records))
	var usable []datasource.ProjectMetric
	for _, rec := range records {
		if !IsPlausibleName(rec.ProjectName) {
			continue
		}
		if _, ok := seen[rec.ProjectName]; ok {
			continue
		}
		seen[rec.ProjectName] = struct{}{}
		usable = append(usable, rec)
	}
	if len(usable) < optionsPerQuestion {
		return Question{}, ErrInsufficientData
	}

	taken := make([]string, len(usable))
	for i, rec := range usable {
		taken[i] = rec.ProjectName
	}

	picked := make([]datasource.ProjectMetric, optionsPerQuestion)
	for i, j := range g.rand.Perm(len(usable))[:optionsPerQuestion] {
		picked[i] = usable[j]
	}

	twist := MakeFake(g.rand, picked[0].ProjectName, taken)
	idx := g.rand.Intn(optionsPerQuestion)

	options := make([]string, optionsPerQuestion)
	statements := make([]string, optionsPerQuestion)
	for i, rec := range picked {
		name := rec.ProjectName
		if i == idx {
			// the twist keeps the displaced row's count
			name = twist
		}
		options[i] = name
		statements[i] = fmt.Sprintf(format, truncateName(name, displayNameMaxLen), rec.Value)
	}

	return Question{
		Intro:       intro,
		Statements:  statements,
		AnswerIndex: idx,
		Options:     options,
		Twist:       twist,
		Outro:       defaultOutro,
	}, nil
}

// keyMetricQuestion pairs one probed metric column with a fabricated one.
func (g *Generator) keyMetricQuestion(ctx context.Context) (Question, error) {
	cols, err := g.repo.KeyMetricColumns(ctx)
	if err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(cols) < 1 {
		return Question{}, ErrInsufficientData
	}

	real := cols[g.rand.Intn(len(cols))]
	twist := jokeMetrics[g.rand.Intn(len(jokeMetrics))]
	idx := g.rand.Intn(2)

	options := make([]string, 2)
	options[idx] = twist
	options[1-idx] = real

	statements := make([]string, 2)
	for i, opt := range options {
		statements[i] = fmt.Sprintf(formatMetric, opt)
	}

	return Question{
		Intro:       introMetric,
		Statements:  statements,
		AnswerIndex: idx,
		Options:     options,
		Twist:       twist,
		Outro:       defaultOutro,
	}, nil
}

func (g *Generator) sample(values []string, n int) []string {
	out := make([]string, n)
	for i, j := range g.rand.Perm(len(values))[:n] {
		out[i] = values[j]
	}
	return out
}

func distinctPlausible(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		if !IsPlausibleName(name) {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
