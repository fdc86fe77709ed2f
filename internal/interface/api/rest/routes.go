package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteIdentities        = RouteApiV1 + "/identities"
	RouteIdentity          = RouteIdentities + "/:identity_id"
	RouteIdentityRestore   = RouteIdentity + "/restore"
	RouteIdentityPermanent = RouteIdentity + "/permanent"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
