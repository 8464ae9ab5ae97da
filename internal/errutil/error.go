package errutil

var (
	ErrHTTPRequest             = NewInternalError("http request error")
	ErrHTTPStatusNotOK         = NewInternalError("http status code not ok")
	ErrJSONDecode              = NewInternalError("json decode error")
	ErrConfig                  = NewInternalError("config error")
	ErrDatabaseOpen            = NewInternalError("database open error")
	ErrDatabaseQuery           = NewInternalError("database query error")
	ErrDatabaseScan            = NewInternalError("database scan error")
	ErrDatabaseNotFoundHistory = NewInternalError("database not found history")
	ErrPlayerSource            = NewInternalError("player source error")
	ErrAudioDecode             = NewInternalError("audio decode error")
	ErrMQTT                    = NewInternalError("mqtt error")
	ErrScheduler               = NewInternalError("scheduler error")
	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
