package panel

import "restaurant-review-server/internal/modules/panel/handler"

type Module struct {
	Handler *handler.Handler
}

func New() *Module {
	return &Module{Handler: handler.New()}
}
