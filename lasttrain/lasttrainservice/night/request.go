package night

// Configuration is one escape-plan request as received from a client.
// Origin and Destination are raw strings in "text" mode (the default)
// or structured descriptions decoded per Mode, the same way the route
// endpoints of a plan request are described to the Maps APIs.
type Configuration struct {
	APIKey      string      `json:"apiKey,omitempty"`
	Mode        string      `json:"mode,omitempty"`
	Language    string      `json:"language,omitempty"`
	Region      string      `json:"region,omitempty"`
	Origin      interface{} `json:"origin"`
	Destination interface{} `json:"destination"`
}

var ModeOptions = []string{
	"text",
	"name",
	"address",
	"id",
}
