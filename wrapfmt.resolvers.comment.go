package wrapfmt

import "context"

// CommentResolver renders hash-curly placeholders as nothing, which makes
// "{# note #}" a template comment. Register it before other resolvers.
type CommentResolver struct{}

// NewCommentResolver creates a comment resolver.
func NewCommentResolver() *CommentResolver {
	return &CommentResolver{}
}

// Name returns the resolver name.
func (r *CommentResolver) Name() string {
	return ResolverNameComment
}

// Resolve drops hash-curly items and ignores everything else.
func (r *CommentResolver) Resolve(_ context.Context, item *Item) (string, bool, error) {
	if item.Wrapper != WrapperHashCurly {
		return "", false, nil
	}
	return "", true, nil
}
