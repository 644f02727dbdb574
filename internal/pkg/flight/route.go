package flight

// Route is an origin/destination pair plus its candidate flights in insertion order.
type Route struct {
	origin      string
	destination string
	flights     []Flight
}

// NewRoute fails fast with ErrRouteNotDefined when origin or destination is empty.
func NewRoute(origin, destination string) (*Route, error) {
	if origin == "" || destination == "" {
		return nil, ErrRouteNotDefined
	}

	return &Route{origin: origin, destination: destination}, nil
}

func (r *Route) Origin() string {
	return r.origin
}

// SetOrigin does not validate; searches re-check the route before pricing.
func (r *Route) SetOrigin(origin string) {
	r.origin = origin
}

func (r *Route) Destination() string {
	return r.destination
}

func (r *Route) SetDestination(destination string) {
	r.destination = destination
}

// Flights returns a copy of the route's flights.
func (r *Route) Flights() []Flight {
	flights := make([]Flight, len(r.flights))
	copy(flights, r.flights)

	return flights
}

func (r *Route) SetFlights(flights []Flight) {
	r.flights = make([]Flight, len(flights))
	copy(r.flights, flights)
}

// Equal compares origin and destination only.
func (r *Route) Equal(other *Route) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.origin == other.origin && r.destination == other.destination
}

// IsDefined reports whether both ends of the route are set.
func (r *Route) IsDefined() bool {
	return r != nil && r.origin != "" && r.destination != ""
}
