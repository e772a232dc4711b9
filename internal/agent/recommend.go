package agent

import (
	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/recommend"
)

// kinds expands a selector: "" means every kind, an unrecognized kind means none.
func kinds(kind model.Kind) []model.Kind {
	if kind == "" {
		return model.Kinds
	}
	if model.ValidKinds[kind] {
		return []model.Kind{kind}
	}
	return nil
}

// Recommendations ranks items for the current user.
func (a *Agent) Recommendations(kind model.Kind, count int) (Groups, error) {
	p, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}
	return a.recommend(p, kind, count), nil
}

// RecommendationsFor ranks items for userID.
func (a *Agent) RecommendationsFor(userID string, kind model.Kind, count int) (Groups, error) {
	p, err := a.User(userID)
	if err != nil {
		return nil, err
	}
	return a.recommend(p, kind, count), nil
}

func (a *Agent) recommend(p *model.Profile, kind model.Kind, count int) Groups {
	out := Groups{}
	for _, k := range kinds(kind) {
		out[k] = a.svc.Recommend(p, k, count)
	}
	return out
}

// Trending ranks items by the trending score.
func (a *Agent) Trending(kind model.Kind, count int) Groups {
	out := Groups{}
	for _, k := range kinds(kind) {
		out[k] = a.svc.Trending(k, count)
	}
	return out
}

// Search finds items by title or genre. Kinds without matches are omitted.
func (a *Agent) Search(query string, kind model.Kind) recommend.Results {
	return a.svc.Search(query, kind)
}
