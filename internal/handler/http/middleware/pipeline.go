package middleware

import "github.com/gin-gonic/gin"

// Stage is a named request-processing step.
type Stage struct {
	Name    string
	Handler gin.HandlerFunc
}

// Pipeline is an ordered list of stages mounted in front of every router.
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Names lists the stages in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	return names
}

// Mount registers every stage on r in order.
func (p *Pipeline) Mount(r gin.IRoutes) {
	handlers := make([]gin.HandlerFunc, 0, len(p.stages))
	for _, s := range p.stages {
		handlers = append(handlers, s.Handler)
	}
	r.Use(handlers...)
}
