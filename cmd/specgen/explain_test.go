package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mangohow/specification"
	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaYAML = `entities:
  - name: User
    fields:
      - name: name
      - name: profile
        kind: one-to-one
        target: Profile
      - name: posts
        kind: one-to-many
        target: Post
      - name: roles
        kind: element-collection
  - name: Profile
    fields:
      - name: bio
  - name: Post
    fields:
      - name: title
      - name: author
        kind: many-to-one
        target: User
`

func TestExplain(t *testing.T) {
	d, err := schema.Parse([]byte(schemaYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = explain(&buf, d, "User", specification.ParsePath("posts.author.profile.bio"), criteria.InnerJoin, false)
	require.NoError(t, err)

	want := "0 User.posts: one-to-many -> Post\n" +
		"1 Post.author: many-to-one -> User\n" +
		"2 User.profile: one-to-one -> Profile\n" +
		"3 Profile.bio: attribute\n" +
		"handle: user_posts_author_profile.bio\n" +
		"FROM User AS user\n" +
		"  INNER JOIN user.posts AS user_posts\n" +
		"    INNER JOIN user_posts.author AS user_posts_author\n" +
		"      INNER JOIN user_posts_author.profile AS user_posts_author_profile\n"
	assert.Equal(t, want, buf.String())
}

func TestExplainElementCollection(t *testing.T) {
	d, err := schema.Parse([]byte(schemaYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = explain(&buf, d, "User", specification.ParsePath("roles.value"), criteria.LeftJoin, true)
	require.NoError(t, err)

	want := "0 User.roles: element-collection\n" +
		"  ends the path, value is ignored\n" +
		"handle: user_roles\n" +
		"FROM User AS user\n" +
		"  LEFT JOIN user.roles AS user_roles\n"
	assert.Equal(t, want, buf.String())
}

func TestExplainUnknownAttribute(t *testing.T) {
	d, err := schema.Parse([]byte(schemaYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = explain(&buf, d, "User", specification.ParsePath("profile.avatar"), criteria.InnerJoin, false)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "1 Profile.avatar: unknown")
}

func TestExplainCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(file, []byte(schemaYAML), 0644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"explain", "-s", file, "-e", "User", "-p", "profile", "--join", "LEFT", "--fetch"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "handle: user_profile\n")
	assert.Contains(t, buf.String(), "  LEFT JOIN FETCH user.profile AS user_profile\n")
}
