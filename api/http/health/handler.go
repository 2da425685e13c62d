package health

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

const Path = "/healthz"
const statusOk = "ok"

type Handler interface {
	Get(ctx *gin.Context)
}

type handler struct {
	mention string
	started time.Time
	now     func() time.Time
}

type status struct {
	Status string `json:"status"`
	Bot    string `json:"bot"`
	Uptime string `json:"uptime"`
}

func NewHandler(mention string, started time.Time) Handler {
	return handler{
		mention: mention,
		started: started,
		now:     time.Now,
	}
}

func (h handler) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, status{
		Status: statusOk,
		Bot:    h.mention,
		Uptime: h.now().Sub(h.started).Truncate(time.Second).String(),
	})
}

func NewRouter(h Handler) (r *gin.Engine) {
	r = gin.New()
	r.Use(gin.Recovery())
	r.GET(Path, h.Get)
	return
}
