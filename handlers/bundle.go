package handlers

// HandlerBundle groups the handlers the route registration needs.
type HandlerBundle struct {
	Chat     *ChatHandler
	Calendar *CalendarHandler
}
