package schedbridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"
)

var schedIDMutex = new(sync.Mutex)
var schedIDCounter = 1

type schedProcID struct {
	prefix string
	value  string
}

func newSchedProcID(addr string) schedProcID {
	schedIDMutex.Lock()
	cnt := schedIDCounter
	schedIDCounter = schedIDCounter + 1
	schedIDMutex.Unlock()
	prefix := fmt.Sprintf("%s(%d)", SCHEDULER_PROC_PREFIX, cnt)
	value := prefix + "@" + addr
	return schedProcID{prefix: prefix, value: value}
}

// asURL renders the id as the base HTTP URL the master posts events
// to, of the form http://<addr>/<prefix>.
func (id *schedProcID) asURL() (*url.URL, error) {
	addr := strings.TrimPrefix(id.value, id.prefix+"@")
	return url.Parse(HTTP_SCHEME + "://" + addr + "/" + id.prefix)
}

/*
schedulerProcess receives master events over HTTP. It wraps the
standard http.Server: the master posts to
/<prefix>/mesos.internal.<MessageName>, the body is decoded with the
driver codec, and the typed message lands on the driver's event
queue.
*/
type schedulerProcess struct {
	server    *http.Server
	listener  net.Listener
	processID schedProcID
	codec     Codec
	eventQ    chan<- interface{}
}

func newSchedulerProcess(eventQ chan<- interface{}, c Codec) (*schedulerProcess, error) {
	if eventQ == nil {
		return nil, fmt.Errorf("schedulerProcess requires an event queue")
	}
	return &schedulerProcess{
		server: &http.Server{},
		codec:  c,
		eventQ: eventQ,
	}, nil
}

// start binds the listener and registers the event routes. The
// process id is derived from the bound address and stays fixed for
// the life of the process.
func (proc *schedulerProcess) start() error {
	ln, err := net.Listen("tcp4", localIP4String()+":0")
	if err != nil {
		return fmt.Errorf("failed to bind scheduler process: %w", err)
	}
	proc.listener = ln
	proc.server.Addr = ln.Addr().String()
	proc.processID = newSchedProcID(proc.server.Addr)

	mux := http.NewServeMux()
	for _, eventName := range []string{
		FRAMEWORK_REGISTERED_EVENT,
		FRAMEWORK_REREGISTERED_EVENT,
		RESOURCE_OFFERS_EVENT,
		RESCIND_OFFER_EVENT,
		STATUS_UPDATE_EVENT,
		FRAMEWORK_MESSAGE_EVENT,
		LOST_SLAVE_EVENT,
		EXITED_EXECUTOR_EVENT,
		FRAMEWORK_ERROR_EVENT,
	} {
		mux.Handle(makeProcEventPath(proc, eventName), proc)
	}
	proc.server.Handler = mux

	u, err := proc.processID.asURL()
	if err != nil {
		return fmt.Errorf("failed to form the process URL: %w", err)
	}
	log.Infof("Scheduler process accepting events at [%s].", u)
	return nil
}

func (proc *schedulerProcess) serve() error {
	err := proc.server.Serve(proc.listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (proc *schedulerProcess) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return proc.server.Shutdown(ctx)
}

func (proc *schedulerProcess) ServeHTTP(rsp http.ResponseWriter, req *http.Request) {
	code := http.StatusAccepted
	var comment string = ""

	// decompose incoming request path of form:
	// /scheduler(?)/mesos.internal.<MessageName>
	_, internalName := path.Split(req.URL.Path)
	messageParts := strings.Split(internalName, ".")

	// if request path is badly formed
	if len(messageParts) != 3 {
		proc.eventQ <- fmt.Errorf("event posted by master is malformed: %s", req.URL.Path)
		code = http.StatusBadRequest
		comment = "Request path malformed."
	} else {
		messageType := messageParts[2]

		data, err := io.ReadAll(req.Body)
		if err != nil {
			code = http.StatusBadRequest
			comment = "Request body missing."
		}
		defer req.Body.Close()

		// dispatch msg based on type
		var msg interface{}
		if err == nil {
			switch messageType {
			case FRAMEWORK_REGISTERED_EVENT:
				m := new(FrameworkRegisteredMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case FRAMEWORK_REREGISTERED_EVENT:
				m := new(FrameworkReregisteredMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case RESOURCE_OFFERS_EVENT:
				m := new(ResourceOffersMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case RESCIND_OFFER_EVENT:
				m := new(RescindResourceOfferMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case STATUS_UPDATE_EVENT:
				m := new(StatusUpdateMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case FRAMEWORK_MESSAGE_EVENT:
				m := new(ExecutorToFrameworkMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case LOST_SLAVE_EVENT:
				m := new(LostSlaveMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case EXITED_EXECUTOR_EVENT:
				m := new(ExitedExecutorMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			case FRAMEWORK_ERROR_EVENT:
				m := new(FrameworkErrorMessage)
				err = proc.codec.Unmarshal(data, m)
				msg = m

			default:
				err = fmt.Errorf("unrecognized event %s posted by master", messageType)
			}
			if err != nil {
				code = http.StatusBadRequest
				comment = fmt.Sprintf("Error decoding %s: %s", messageType, err.Error())
			}
		}

		if err == nil && code == http.StatusAccepted {
			proc.eventQ <- msg
		} else {
			proc.eventQ <- errors.New(comment)
		}
	}

	rsp.WriteHeader(code)
	if comment != "" {
		fmt.Fprintln(rsp, comment)
	}
}

func makeProcEventPath(proc *schedulerProcess, eventName string) string {
	return fmt.Sprintf("/%s/%s%s", proc.processID.prefix, MESOS_INTERNAL_PREFIX, eventName)
}
