package enum

type HTTPMethodEnum string

const (
	GET    HTTPMethodEnum = "GET"
	POST   HTTPMethodEnum = "POST"
	PUT    HTTPMethodEnum = "PUT"
	PATCH  HTTPMethodEnum = "PATCH"
	DELETE HTTPMethodEnum = "DELETE"
)

func (e HTTPMethodEnum) ToString() string {
	return string(e)
}

func (e HTTPMethodEnum) IsValid() bool {
	switch e {
	case GET, POST, PUT, PATCH, DELETE:
		return true
	}
	return false
}

// HasBody reports whether requests with this method carry a payload.
func (e HTTPMethodEnum) HasBody() bool {
	switch e {
	case POST, PUT, PATCH:
		return true
	}
	return false
}

type HTTPContentTypeEnum string

const (
	ApplicationJSON  HTTPContentTypeEnum = "application/json"
	ApplicationXform HTTPContentTypeEnum = "application/x-www-form-urlencoded"
	MultipartForm    HTTPContentTypeEnum = "multipart/form-data"
	TextHTML         HTTPContentTypeEnum = "text/html; charset=utf-8"
)

func (e HTTPContentTypeEnum) ToString() string {
	return string(e)
}

func (e HTTPContentTypeEnum) IsValid() bool {
	switch e {
	case ApplicationJSON, ApplicationXform, MultipartForm, TextHTML:
		return true
	}
	return false
}
