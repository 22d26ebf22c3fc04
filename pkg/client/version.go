package client

// Version of the go-tvmaze library, reported in the default User-Agent header.
const Version = "1.1.0"

// UserAgent is the default value of the User-Agent header.
const UserAgent = "go-tvmaze/" + Version
