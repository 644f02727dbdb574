package endpoints

// Endpoints groups every go-kit endpoint exposed by the service.
type Endpoints struct {
	PricingEndpoint PricingEndpoint
}
