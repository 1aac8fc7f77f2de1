package gateway

import "net/http"

// chatPage is a single-file chat client for the AG-UI endpoint. A token in
// the page URL (?token=...) is sent as a bearer token.
const chatPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>arr agent</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; }
#log { border: 1px solid #ccc; padding: 1rem; min-height: 20rem; white-space: pre-wrap; }
.user { color: #225; font-weight: 600; }
.step { color: #888; font-size: 0.85em; }
.tool { color: #585; font-size: 0.85em; }
.error { color: #a22; }
form { display: flex; gap: 0.5rem; margin-top: 1rem; }
input { flex: 1; padding: 0.5rem; }
</style>
</head>
<body>
<div id="log"></div>
<form id="f"><input id="q" autocomplete="off" placeholder="Ask the agent"><button>Send</button></form>
<script>
const log = document.getElementById("log");
const token = new URLSearchParams(location.search).get("token");
const threadId = crypto.randomUUID();
const messages = [];

function line(cls, text) {
  const el = document.createElement("div");
  el.className = cls;
  el.textContent = text;
  log.appendChild(el);
  return el;
}

document.getElementById("f").addEventListener("submit", async (e) => {
  e.preventDefault();
  const q = document.getElementById("q");
  const text = q.value.trim();
  if (!text) return;
  q.value = "";
  line("user", text);
  messages.push({ id: crypto.randomUUID(), role: "user", content: text });

  const headers = { "Content-Type": "application/json" };
  if (token) headers["Authorization"] = "Bearer " + token;
  const resp = await fetch("/ag-ui", {
    method: "POST",
    headers,
    body: JSON.stringify({ threadId, runId: crypto.randomUUID(), messages, tools: [], context: [], state: {} }),
  });
  if (!resp.ok) { line("error", "request failed: " + resp.status); return; }

  const reader = resp.body.getReader();
  const dec = new TextDecoder();
  let buf = "", answer = "", current = null;
  for (;;) {
    const { done, value } = await reader.read();
    if (done) break;
    buf += dec.decode(value, { stream: true });
    let i;
    while ((i = buf.indexOf("\n\n")) >= 0) {
      const chunk = buf.slice(0, i);
      buf = buf.slice(i + 2);
      if (!chunk.startsWith("data: ")) continue;
      const ev = JSON.parse(chunk.slice(6));
      switch (ev.type) {
        case "STEP_STARTED": line("step", "> " + ev.stepName); break;
        case "TOOL_CALL_START": line("tool", "tool: " + ev.toolCallName); break;
        case "TEXT_MESSAGE_START": current = line("", ""); break;
        case "TEXT_MESSAGE_CONTENT": answer += ev.delta; if (current) current.textContent += ev.delta; break;
        case "RUN_ERROR": line("error", ev.message); break;
      }
    }
  }
  if (answer) messages.push({ id: crypto.randomUUID(), role: "assistant", content: answer });
});
</script>
</body>
</html>
`

func serveChatPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(chatPage))
}
