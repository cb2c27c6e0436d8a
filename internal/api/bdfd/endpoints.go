package bdfd

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the public catalog API root.
const DefaultBaseURL = "https://botdesignerdiscord.com/public/api/"

// Domain selects one of the two record families served by the catalog.
type Domain string

const (
	DomainFunction Domain = "function"
	DomainCallback Domain = "callback"
)

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	_, ok := endpointPaths[d]
	return ok
}

// Operation is a catalog endpoint kind.
type Operation string

const (
	OperationInfo    Operation = "info"
	OperationList    Operation = "list"
	OperationTagList Operation = "tag-list"
)

type endpointSet struct {
	info    string
	list    string
	tagList string
}

var endpointPaths = map[Domain]endpointSet{
	DomainFunction: {
		info:    "function/",
		list:    "function_list",
		tagList: "function_tag_list",
	},
	DomainCallback: {
		info:    "callback/",
		list:    "callback_list",
		tagList: "callback_tag_list",
	},
}

// EndpointPath returns the path fragment, relative to the API root, for the
// given domain and operation. The tag is only used by OperationInfo and is
// escaped as a single path segment. Unknown domains or operations yield "".
func EndpointPath(domain Domain, op Operation, tag string) string {
	set, ok := endpointPaths[domain]
	if !ok {
		return ""
	}
	switch op {
	case OperationInfo:
		return set.info + url.PathEscape(tag)
	case OperationList:
		return set.list
	case OperationTagList:
		return set.tagList
	default:
		return ""
	}
}

// normalizeBaseURL guarantees a single trailing slash so fragments can be appended.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/"
}
