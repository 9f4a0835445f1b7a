package model

import (
	spec "github.com/mangohow/specification"
	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/nullable"
)

// UserFilter is the search form of the user list. Empty fields do not filter.
type UserFilter struct {
	Username     nullable.String
	Email        nullable.String
	Bio          string
	Roles        []string
	GroupIds     []int64
	CreatedFrom  nullable.Time
	CreatedUntil nullable.Time
	NoProfile    bool
	PostKeyword  string
}

func (f *UserFilter) Specification() (spec.Specification[User], error) {
	posts := spec.New[User](Schema).
		Like("posts.title", f.PostKeyword, spec.WithWildcard(spec.WildcardBoth)).
		Like("posts.content", f.PostKeyword, spec.WithWildcard(spec.WildcardBoth), spec.Connect(spec.Or))
	postSpec, err := posts.Build()
	if err != nil {
		return nil, err
	}

	return spec.New[User](Schema).
		Equal("username", f.Username).
		Equal("email", f.Email).
		Like("profile.bio", f.Bio, spec.WithWildcard(spec.WildcardBoth)).
		In("roles", spec.Values(f.Roles)).
		In("groups.id", spec.Values(f.GroupIds)).
		Between("createdAt", f.CreatedFrom, f.CreatedUntil, spec.MaxEnvelope(spec.Exclusive)).
		IsNull("profile", f.NoProfile, spec.WithJoin(criteria.LeftJoin)).
		Inner(postSpec).
		Build()
}
