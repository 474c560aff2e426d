package domain

// Status is the reservation lifecycle status code used by the API.
type Status int

const (
	StatusPendente Status = iota + 1
	StatusAprovada
	StatusReprovada
	StatusCancelada
	StatusConcluida
	StatusConcluidaParcelada
)

var statusLabels = map[Status]string{
	StatusPendente:           "Pendente",
	StatusAprovada:           "Aprovada",
	StatusReprovada:          "Reprovada",
	StatusCancelada:          "Cancelada",
	StatusConcluida:          "Concluída",
	StatusConcluidaParcelada: "Concluída Parcelada",
}

// Label returns the human-readable status name, or empty for unknown codes.
func (s Status) Label() string {
	return statusLabels[s]
}

// IsValid reports whether s is one of the fixed status codes.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports whether no client-driven transition can leave s.
// Only Pendente accepts a decision; everything else is terminal here.
func (s Status) IsTerminal() bool {
	return s != StatusPendente
}

// StatusColor is the badge color pair used when rendering a status.
type StatusColor struct {
	Bg   string
	Text string
}

var statusColors = map[Status]StatusColor{
	StatusPendente:           {Bg: "#F59E0B", Text: "#ffffff"},
	StatusAprovada:           {Bg: "#22C55E", Text: "#ffffff"},
	StatusReprovada:          {Bg: "#EF4444", Text: "#ffffff"},
	StatusCancelada:          {Bg: "#DC2626", Text: "#ffffff"},
	StatusConcluida:          {Bg: "#12b17c", Text: "#ffffff"},
	StatusConcluidaParcelada: {Bg: "#3B82F6", Text: "#ffffff"},
}

var defaultStatusColor = StatusColor{Bg: "#3b82f6", Text: "#ffffff"}

// Color returns the badge colors for s, falling back to the default blue.
func (s Status) Color() StatusColor {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultStatusColor
}

// ColorForLabel looks a status color up by its label ("Pendente", ...).
func ColorForLabel(label string) StatusColor {
	for s, l := range statusLabels {
		if l == label {
			return s.Color()
		}
	}
	return defaultStatusColor
}
