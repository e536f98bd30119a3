package crt

// InvalidArgument - Custom error to inform that a constructor or resize was given an unusable argument
type InvalidArgument struct {
	msg string
}

// Error - Used to notify that an argument was invalid
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// UnknownTechnique - Custom error to inform that the requested collision resolution technique does not exist
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify that the collision resolution technique is unknown
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}
