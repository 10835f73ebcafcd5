package viewmodel

import (
	"sort"
	"strings"

	"hakwon/backend/models"
	"hakwon/backend/policy"
	"hakwon/backend/utils"
)

// SortFlagged is the community board's moderation mode: flagged posts only,
// admins only.
const SortFlagged = "flagged"

// PostCriteria are the viewer-selected inputs of the community pipeline.
type PostCriteria struct {
	Query string
	Sort  string
}

// PostView is a post with its author joined on and the creation time
// pre-formatted for display.
type PostView struct {
	models.Post
	AuthorName   string `json:"author_name"`
	AuthorEmail  string `json:"author_email,omitempty"`
	CreatedLabel string `json:"created_label"`
}

// BuildPostList runs the community pipeline: author join, free-text filter
// over title+content+author name, mode/sort, and finally the visibility rule
// that hides flagged posts from everyone but admins. The visibility rule
// composes after every user-selected criterion.
func BuildPostList(posts []models.Post, users []models.User, viewer models.User, crit PostCriteria) []PostView {
	query := strings.ToLower(strings.TrimSpace(crit.Query))

	joined := make([]PostView, 0, len(posts))
	for _, post := range posts {
		view := PostView{
			Post:         post,
			AuthorName:   AuthorName(users, post.UserID),
			CreatedLabel: utils.FormatRelativeTime(post.CreatedAt),
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(view.Title), query) &&
			!strings.Contains(strings.ToLower(view.Content), query) &&
			!strings.Contains(strings.ToLower(view.AuthorName), query) {
			continue
		}
		joined = append(joined, view)
	}

	switch crit.Sort {
	case SortNewest:
		sort.SliceStable(joined, func(i, j int) bool {
			return joined[i].CreatedAt.After(joined[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(joined, func(i, j int) bool {
			return joined[i].ID < joined[j].ID
		})
	case SortFlagged:
		if !policy.IsAdmin(viewer) {
			return []PostView{}
		}
		flagged := joined[:0:0]
		for _, view := range joined {
			if view.HasFlagged {
				flagged = append(flagged, view)
			}
		}
		joined = flagged
	}

	visible := make([]PostView, 0, len(joined))
	for _, view := range joined {
		if policy.PostVisible(view.Post, viewer) {
			visible = append(visible, view)
		}
	}
	return visible
}

// FlaggedPosts is the admin dashboard's moderation queue: flagged posts with
// author name and email joined on, newest first.
func FlaggedPosts(posts []models.Post, users []models.User) []PostView {
	flagged := make([]PostView, 0)
	for _, post := range posts {
		if !post.HasFlagged {
			continue
		}
		// The moderation queue shows the full date-time, not relative time.
		view := PostView{
			Post:         post,
			AuthorName:   UnknownName,
			CreatedLabel: utils.FormatKoreanDateTime(post.CreatedAt),
		}
		if author := UserByID(users, post.UserID.Int()); author != nil {
			view.AuthorName = author.Name
			view.AuthorEmail = author.Email
		}
		flagged = append(flagged, view)
	}
	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].CreatedAt.After(flagged[j].CreatedAt)
	})
	return flagged
}
