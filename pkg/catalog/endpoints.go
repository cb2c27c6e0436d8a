package catalog

import "github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"

// Domain selects the record family a client works on.
type Domain = bdfd.Domain

// Operation names a catalog endpoint kind.
type Operation = bdfd.Operation

const (
	DomainFunction = bdfd.DomainFunction
	DomainCallback = bdfd.DomainCallback

	OperationInfo    = bdfd.OperationInfo
	OperationList    = bdfd.OperationList
	OperationTagList = bdfd.OperationTagList
)

// DefaultBaseURL is the public catalog API root.
const DefaultBaseURL = bdfd.DefaultBaseURL

// EndpointPath returns the path fragment for a domain and operation,
// relative to the API root. See bdfd.EndpointPath.
var EndpointPath = bdfd.EndpointPath
