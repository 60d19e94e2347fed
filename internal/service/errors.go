package service

import (
	"errors"
	"fmt"
)

// Category sentinels. Specific failures wrap one of these, so callers branch
// with errors.Is on the category and the request layer maps it to an outcome.
var (
	ErrInternal         = errors.New("internal server error")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrPermissionDenied = errors.New("permission denied")
)

var (
	ErrPostNotFound  = fmt.Errorf("%w: post does not exist", ErrNotFound)
	ErrGroupNotFound = fmt.Errorf("%w: group does not exist", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("%w: user does not exist", ErrNotFound)

	ErrTextRequired  = fmt.Errorf("%w: text must not be empty", ErrValidation)
	ErrTitleRequired = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrSlugRequired  = fmt.Errorf("%w: slug must not be empty", ErrValidation)

	ErrSelfFollow       = fmt.Errorf("%w: cannot follow yourself", ErrInvalidOperation)
	ErrAlreadyFollowing = fmt.Errorf("%w: already following this author", ErrInvalidOperation)
	ErrSlugTaken        = fmt.Errorf("%w: group slug is already taken", ErrInvalidOperation)

	ErrNotPostAuthor = fmt.Errorf("%w: only the author can edit the post", ErrPermissionDenied)

	ErrFailedToUploadPostImageToCDN = errors.New("failed to upload post image to CDN")
)
