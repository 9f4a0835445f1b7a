//go:generate go run github.com/mangohow/specification/cmd/specgen gen -d . -o schema_gen.go --package model
package model

import (
	"time"

	"github.com/mangohow/specification/nullable"
)

type base struct {
	Id        int64     `db:"id,pk"`
	CreatedAt time.Time `db:"createdAt"`
}

type User struct {
	base
	Username string          `db:"username"`
	Password string          `db:"password"`
	Email    nullable.String `db:"email"`
	Address  string          `db:"address"`
	Profile  *Profile        `db:"profile,one-to-one"`
	Posts    []*Post         `db:"posts,one-to-many"`
	Groups   []*Group        `db:"groups,many-to-many"`
	Roles    []string        `db:"roles,element-collection"`
}

type Profile struct {
	Id       int64         `db:"id,pk"`
	Bio      string        `db:"bio"`
	Birthday nullable.Time `db:"birthday"`
	User     *User         `db:"user,one-to-one"`
}

type Post struct {
	base
	Title    string     `db:"title"`
	Content  string     `db:"content"`
	Views    int64      `db:"views"`
	Author   *User      `db:"author,many-to-one"`
	Comments []*Comment `db:"comments,one-to-many"`
	Tags     []string   `db:"tags,element-collection"`
}

type Comment struct {
	base
	Text   string `db:"text"`
	Post   *Post  `db:"post,many-to-one"`
	Author *User  `db:"author,many-to-one"`
}

type Group struct {
	Id      int64   `db:"id,pk"`
	Name    string  `db:"name"`
	Members []*User `db:"members,many-to-many"`
}
