package rpc

import (
	"net"
	"net/http"

	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/viper"
)

// RPC serves the registered APIs over JSON-RPC at `/` and the rendered
// reference at `/docs/`.
type RPC struct {
	service.BaseService
	config    *Config
	apis      []rpc.API
	docs      http.Handler
	rpcServer *rpc.Server
	server    *http.Server
	listener  net.Listener
}

func NewRPC(logger log.Logger, docs *DocsAPI) *RPC {
	r := &RPC{config: &DefaultConfig, docs: NewDocsHandler(docs)}
	r.BaseService = *service.NewBaseService(logger, "RPC", r)
	r.RegisterName(Namespace, docs)
	return r
}

// RegisterName adds receiver to the APIs served under namespace name. It
// must be called before the service is started.
func (r *RPC) RegisterName(name string, receiver interface{}) {
	r.apis = append(r.apis, rpc.API{Namespace: name, Service: receiver})
}

func (r *RPC) OnStart() error {
	ethlog.Root().SetHandler(
		ethlog.FuncHandler(func(record *ethlog.Record) error {
			fn := r.Logger.Info
			switch record.Lvl {
			case ethlog.LvlTrace, ethlog.LvlDebug:
				fn = r.Logger.Debug
			case ethlog.LvlError, ethlog.LvlCrit:
				fn = r.Logger.Error
			}
			fn(record.Msg, record.Ctx...)
			return nil
		}))

	listenAddr := r.config.ListenAddress
	if viper.IsSet(flags.RPC_Addr) {
		listenAddr = viper.GetString(flags.RPC_Addr)
	}
	// Initialize the server.
	r.rpcServer = rpc.NewServer()

	// Register RPC services.
	for _, rpcAPI := range r.apis {
		if err := r.rpcServer.RegisterName(rpcAPI.Namespace, rpcAPI.Service); err != nil {
			return err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", r.rpcServer)
	mux.Handle(DocsPath, r.docs)

	r.server = &http.Server{
		Handler:           mux,
		ReadTimeout:       r.config.HTTPTimeouts.ReadTimeout,
		ReadHeaderTimeout: r.config.HTTPTimeouts.ReadHeaderTimeout,
		WriteTimeout:      r.config.HTTPTimeouts.WriteTimeout,
		IdleTimeout:       r.config.HTTPTimeouts.IdleTimeout,
	}

	r.Logger.Debug("try listening", "listenAddr", listenAddr)
	// Start the server.
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	r.listener = listener
	r.Logger.Info("listening", "listenAddr", listener.Addr().String())
	go r.server.Serve(listener)
	return nil
}

func (r *RPC) OnStop() {
	r.server.Close()
	r.rpcServer.Stop()
}

// Addr returns the address the server listens on, nil before it is started.
func (r *RPC) Addr() net.Addr {
	if r.listener == nil {
		return nil
	}
	return r.listener.Addr()
}
