package middleware

import "github.com/gin-gonic/gin"

const cookiesKey = "hms.cookies"

// CookieParser exposes the request cookies as a name to value map.
func CookieParser() gin.HandlerFunc {
	return func(c *gin.Context) {
		jar := make(map[string]string)
		for _, ck := range c.Request.Cookies() {
			if _, seen := jar[ck.Name]; !seen {
				jar[ck.Name] = ck.Value
			}
		}
		c.Set(cookiesKey, jar)
		c.Next()
	}
}

// Cookies returns the map stored by CookieParser, or an empty map.
func Cookies(c *gin.Context) map[string]string {
	if v, ok := c.Get(cookiesKey); ok {
		if jar, ok := v.(map[string]string); ok {
			return jar
		}
	}
	return map[string]string{}
}
