package platform

// Package platform contains OS integration glue: the user's Downloads
// directory, directory creation, home-relative paths and opening exported
// files in the system file manager or default application.
