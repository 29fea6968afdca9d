package main

import (
	"log"
	"os"

	"github.com/itcomusic/sqlmin"
)

const query = `
/* monthly totals */
SELECT date_trunc('month', created) AS month, -- bucket
       sum(amount)
FROM   payments
WHERE  note <> 'refund
	requested'
GROUP  BY 1;`

func main() {
	out, err := sqlmin.New().
		Compress().
		Debug(os.Stderr).
		Minify(query)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("minified query, %s", out)
}
