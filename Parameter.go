package rmatch

// Parameter is a captured segment in path order, for callers that want the
// raw text of each field rather than a Record.
//
// Example:
//
//	Pattern: /user/{id:int}/posts/{postId}
//	URL:     /user/123/posts/456
//	Result:  []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
type Parameter struct {
	Key   string
	Value string
}
