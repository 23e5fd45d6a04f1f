package language

// TargetLanguage is the language the platform currently translates into.
// There is at most one; reads of an absent record return Default().
type TargetLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Default is the documented fallback when no target language has been set.
func Default() TargetLanguage {
	return TargetLanguage{Code: "hula", Name: "Hula"}
}
