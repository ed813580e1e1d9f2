package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode               = 0
	ServiceErrCode            = 10001
	ParamErrCode              = 10002
	AuthorizationFailedCode   = 10003
	UserNotExistErrCode       = 10004
	VideoNotExistErrCode      = 10005
	CommentNotExistErrCode    = 10006
	TweetNotExistErrCode      = 10007
	PlaylistNotExistErrCode   = 10008
	AlreadySubscribedErrCode  = 10009
	VideoAlreadyInListErrCode = 10010
	VideoNotInListErrCode     = 10011
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is matches by code so a WithMessage variant still matches its sentinel.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	return ok && t.ErrCode == e.ErrCode
}

var (
	Success             = NewErrNo(SuccessCode, "Success")
	ServiceErr          = NewErrNo(ServiceErrCode, "Service is unable to handle the request")
	ParamErr            = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	RequestErr          = NewErrNo(ParamErrCode, "Wrong request has been given")
	AuthorizationErr    = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	UserNotExistErr     = NewErrNo(UserNotExistErrCode, "User does not exist")
	VideoNotExistErr    = NewErrNo(VideoNotExistErrCode, "Video does not exist")
	CommentNotExistErr  = NewErrNo(CommentNotExistErrCode, "Comment does not exist")
	TweetNotExistErr    = NewErrNo(TweetNotExistErrCode, "Tweet does not exist")
	PlaylistNotExistErr = NewErrNo(PlaylistNotExistErrCode, "Playlist does not exist")

	AlreadySubscribedErr      = NewErrNo(AlreadySubscribedErrCode, "User is already subscribed to this channel")
	VideoAlreadyInPlaylistErr = NewErrNo(VideoAlreadyInListErrCode, "Video already exists in this playlist")
	VideoNotInPlaylistErr     = NewErrNo(VideoNotInListErrCode, "Video does not exist in this playlist")
)

// ConvertErr convert error to ErrNo, keeping the code of a wrapped ErrNo.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
