package logging

import "fmt"

// render splits a log call's arguments into an optional context object
// and the final message. A leading Fields (or plain map) is the
// context; a leading string with further arguments is a printf format;
// a lone string passes through untouched.
func render(args ...interface{}) (Fields, string) {
	if len(args) == 0 {
		return nil, ""
	}
	var fields Fields
	switch f := args[0].(type) {
	case Fields:
		fields = f
		args = args[1:]
	case map[string]interface{}:
		fields = Fields(f)
		args = args[1:]
	}
	if len(args) == 0 {
		return fields, ""
	}
	if format, ok := args[0].(string); !ok {
		return fields, fmt.Sprint(args...)
	} else if len(args) == 1 {
		return fields, format
	} else {
		return fields, fmt.Sprintf(format, args[1:]...)
	}
}
