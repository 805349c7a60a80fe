package api

import (
	"bytes"
	"encoding/json"
)

// RatingInput 保留評分的原始文字，JSON 數字與字串、表單欄位都收
// 是否為 1 到 5 的整數交由 service.ParseRating 判斷
type RatingInput string

func (r *RatingInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RatingInput(s)
		return nil
	}
	*r = RatingInput(data)
	return nil
}

// UnmarshalParam 供 echo 綁定表單與 query 參數
func (r *RatingInput) UnmarshalParam(param string) error {
	*r = RatingInput(param)
	return nil
}
