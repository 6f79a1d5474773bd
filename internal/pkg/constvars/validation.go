package constvars

// CustomValidationErrorMessages maps validator tags to the client message
// fragment appended after the lowercased field name.
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email address",
	"uuid":           "must be a valid identifier",
	"oneof":          "must be one of: %s",
	"min":            "must be at least %s characters",
	"max":            "must be at most %s characters",
	"numeric":        "must contain digits only",
	"payment_method": "is not a recognized payment method",
	"currency_code":  "must be a 3-letter ISO currency code",
	"phone_number":   "phone number must be 10 local digits or include the country prefix",
}

// TagsWithParams marks the tags whose message needs the tag parameter
// substituted in.
var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}
