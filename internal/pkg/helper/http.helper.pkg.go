package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
	"time"

	"complaint-portal/internal/common/enum"
	_type "complaint-portal/internal/common/type"
)

const defaultHTTPTimeout = 1 * time.Minute

var ErrUnsupportedContentType = errors.New("unsupported content type")

type HTTPAPIResponse struct {
	StatusCode int         `json:"status_code"`
	Headers    http.Header `json:"headers"`
	Data       interface{} `json:"data"`
	Raw        []byte      `json:"-"`
}

// OK reports a 2xx status.
func (r *HTTPAPIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type HTTPRequestPayload struct {
	Method enum.HTTPMethodEnum
	URL    string
	Body   interface{}
	Params map[string]string
}

type HTTPRequestConfig struct {
	Ctx       context.Context
	Headers   http.Header
	Auth      *BasicAuthConfig
	HTTPAgent *http.Transport
	Client    *http.Client
}

type BasicAuthConfig struct {
	Username string
	Password string
}

// HTTPRequest performs a single request and decodes the body by content
// type. Non-2xx responses are returned as-is; interpreting them is up to the
// caller.
func HTTPRequest(
	payload *HTTPRequestPayload,
	config *HTTPRequestConfig,
) (*HTTPAPIResponse, error) {
	if config == nil {
		config = &HTTPRequestConfig{}
	}
	if config.Ctx == nil {
		config.Ctx = context.Background()
	}
	headers := config.Headers.Clone()
	if headers == nil {
		headers = http.Header{}
	}

	requestBody, err := handleRequestBody(payload, headers)
	if err != nil {
		return nil, err
	}

	req, client, err := prepareRequest(payload, requestBody, headers, config)
	if err != nil {
		return nil, err
	}
	return executeRequest(req, client)
}

func handleRequestBody(payload *HTTPRequestPayload, headers http.Header) (io.Reader, error) {
	if !payload.Method.HasBody() || payload.Body == nil {
		return nil, nil
	}

	var requestBody io.Reader
	var err error

	switch headers.Get("Content-Type") {
	case enum.ApplicationXform.ToString():
		requestBody, err = createFormURLEncodedBody(payload.Body)
	case enum.MultipartForm.ToString():
		var ct string
		requestBody, ct, err = createMultipartBody(payload.Body)
		headers.Set("Content-Type", ct)
	case enum.ApplicationJSON.ToString():
		requestBody, err = createJSONBody(payload.Body)
	case "":
		headers.Set("Content-Type", enum.ApplicationJSON.ToString())
		requestBody, err = createJSONBody(payload.Body)
	default:
		return nil, ErrUnsupportedContentType
	}

	return requestBody, err
}

func prepareRequest(payload *HTTPRequestPayload, body io.Reader, headers http.Header, config *HTTPRequestConfig) (*http.Request, *http.Client, error) {
	target, err := withParams(payload.URL, payload.Params)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(config.Ctx, payload.Method.ToString(), target, body)
	if err != nil {
		return nil, nil, err
	}

	for key, values := range headers {
		req.Header[key] = append(req.Header[key], values...)
	}

	if config.Auth != nil {
		req.SetBasicAuth(config.Auth.Username, config.Auth.Password)
	}

	client := config.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
		if config.HTTPAgent != nil {
			client.Transport = config.HTTPAgent
		}
	}

	return req, client, nil
}

func withParams(rawURL string, params map[string]string) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for key, value := range params {
		if value == "" {
			continue
		}
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func executeRequest(req *http.Request, client *http.Client) (*HTTPAPIResponse, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result, err := parseResponseBody(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		return nil, err
	}

	return &HTTPAPIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Data:       result,
		Raw:        raw,
	}, nil
}

func parseResponseBody(contentType string, responseBody []byte) (interface{}, error) {
	if len(responseBody) == 0 {
		return nil, nil
	}

	var result interface{}
	switch {
	case strings.Contains(contentType, "application/json"):
		if err := json.Unmarshal(responseBody, &result); err != nil {
			return nil, err
		}

	case strings.Contains(contentType, "text/plain"), strings.Contains(contentType, "text/html"):
		result = string(responseBody)

	case strings.Contains(contentType, "application/xml"), strings.Contains(contentType, "text/xml"):
		var xmlResult interface{}
		if err := xml.Unmarshal(responseBody, &xmlResult); err != nil {
			return nil, err
		}
		result = xmlResult

	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		parsedForm, err := url.ParseQuery(string(responseBody))
		if err != nil {
			return nil, err
		}
		result = parsedForm

	default:
		result = responseBody
	}

	return result, nil
}

func createJSONBody(body interface{}) (io.Reader, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(jsonData), nil
}

func createFormURLEncodedBody(body interface{}) (io.Reader, error) {
	switch formData := body.(type) {
	case url.Values:
		return strings.NewReader(formData.Encode()), nil
	case map[string]string:
		values := url.Values{}
		for key, value := range formData {
			values.Set(key, value)
		}
		return strings.NewReader(values.Encode()), nil
	}
	return nil, errors.New("body must be url.Values or map[string]string for form-urlencoded content type")
}

// createMultipartBody writes fields in key order so the wire format is
// stable.
func createMultipartBody(body interface{}) (io.Reader, string, error) {
	formData, ok := body.(map[string]interface{})
	if !ok {
		return nil, "", errors.New("body must be a map[string]interface{} for multipart/form-data content type")
	}
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(formData))
	for key := range formData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch v := formData[key].(type) {
		case string:
			if err := writer.WriteField(key, v); err != nil {
				return nil, "", err
			}
		case []string:
			for _, s := range v {
				if err := writer.WriteField(key, s); err != nil {
					return nil, "", err
				}
			}
		case []byte:
			part, err := writer.CreateFormFile(key, key)
			if err != nil {
				return nil, "", err
			}
			if _, err = part.Write(v); err != nil {
				return nil, "", err
			}
		case []_type.BufferedFile:
			for i := range v {
				if err := writeFilePart(writer, key, &v[i]); err != nil {
					return nil, "", err
				}
			}
		case _type.BufferedFile:
			if err := writeFilePart(writer, key, &v); err != nil {
				return nil, "", err
			}
		default:
			return nil, "", fmt.Errorf("unsupported multipart data type %T for field %q", v, key)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, key string, file *_type.BufferedFile) error {
	fileField, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, key, file.OriginalName)},
		"Content-Type":        []string{file.MimeType},
	})
	if err != nil {
		return err
	}
	_, err = fileField.Write(file.Buffer)
	return err
}
