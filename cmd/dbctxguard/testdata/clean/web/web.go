package web

// Controller is the shop's controller base.
type Controller struct{}
